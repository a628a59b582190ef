package domain

// Section is one labeled block of the report artifact.
type Section struct {
	// Name identifies the analysis that produced the section, e.g. "long_names".
	Name string

	// Header is the first line of the section.
	Header string

	// Body holds zero or more lines written after the header.
	Body []string

	// Value, when Scalar is set, is written as the single line after Header.
	Value  string
	Scalar bool

	// Skip marks a section with nothing to report; it is not written at all.
	Skip bool
}

// Lines returns the number of lines the section contributes after its header.
func (s Section) Lines() int {
	if s.Skip {
		return 0
	}
	if s.Scalar {
		return 1
	}
	return len(s.Body)
}
