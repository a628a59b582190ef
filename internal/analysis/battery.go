package analysis

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/countryreport/internal/domain"
)

// Report headers, written verbatim.
const (
	HeaderLongNames          = "Country names longer than 10 characters:"
	HeaderShortNames         = "Short Country Names"
	HeaderStartsWithA        = "Country names starting with 'A'"
	HeaderEndsWithLand       = "Country name ends with 'land'"
	HeaderContainsUnited     = "Countries Containing United"
	HeaderSortedAscending    = "Sorted Country Name (ASC)"
	HeaderSortedDescending   = "Sorted Country Name (DSC)"
	HeaderUniqueFirstLetters = "Unique First Letters"
	HeaderTotalCount         = "Total country names: %d"
	HeaderLongestName        = "Longest country name: %s"
	HeaderShortestName       = "Shortest Country Name: %s"
	HeaderUpperCaseAll       = "Country Name in UPPERCASE"
	HeaderMultiWord          = "Countries With Multiple Words"
	HeaderCharacterCounts    = "Countries and Character Counts"
	HeaderAnyStartsWithZ     = "Any country name starts with 'z':"
	HeaderAllLongerThan3     = "Are all country names longer than 3 characters:"
)

// Analysis is one named step of the report.
type Analysis struct {
	Name string
	Run  func(entries []domain.Country) domain.Section
}

func list(name, header string, fn func([]domain.Country) []string) Analysis {
	return Analysis{
		Name: name,
		Run: func(entries []domain.Country) domain.Section {
			return domain.Section{Name: name, Header: header, Body: fn(entries)}
		},
	}
}

func boolean(name, header string, fn func([]domain.Country) bool) Analysis {
	return Analysis{
		Name: name,
		Run: func(entries []domain.Country) domain.Section {
			return domain.Section{Name: name, Header: header, Scalar: true, Value: strconv.FormatBool(fn(entries))}
		},
	}
}

func extreme(name, format string, fn func([]domain.Country) (domain.Country, bool)) Analysis {
	return Analysis{
		Name: name,
		Run: func(entries []domain.Country) domain.Section {
			c, ok := fn(entries)
			if !ok {
				return domain.Section{Name: name, Skip: true}
			}
			return domain.Section{Name: name, Header: fmt.Sprintf(format, c.Name())}
		},
	}
}

// Battery returns the sixteen analyses in the order they appear in the report.
func Battery() []Analysis {
	return []Analysis{
		list("long_names", HeaderLongNames, LongNames),
		list("short_names", HeaderShortNames, ShortNames),
		list("starts_with_a", HeaderStartsWithA, StartsWithA),
		list("ends_with_land", HeaderEndsWithLand, EndsWithLand),
		list("contains_united", HeaderContainsUnited, ContainsUnited),
		list("sorted_ascending", HeaderSortedAscending, SortedAscending),
		list("sorted_descending", HeaderSortedDescending, SortedDescending),
		list("unique_first_letters", HeaderUniqueFirstLetters, UniqueFirstLetters),
		{
			Name: "total_count",
			Run: func(entries []domain.Country) domain.Section {
				return domain.Section{Name: "total_count", Header: fmt.Sprintf(HeaderTotalCount, TotalCount(entries))}
			},
		},
		extreme("longest_name", HeaderLongestName, LongestName),
		extreme("shortest_name", HeaderShortestName, ShortestName),
		list("upper_case_all", HeaderUpperCaseAll, UpperCaseAll),
		list("multi_word", HeaderMultiWord, MultiWord),
		{
			Name: "character_counts",
			Run: func(entries []domain.Country) domain.Section {
				counts := CharacterCounts(entries)
				body := make([]string, len(counts))
				for i, cc := range counts {
					body[i] = cc.String()
				}
				return domain.Section{Name: "character_counts", Header: HeaderCharacterCounts, Body: body}
			},
		},
		boolean("any_starts_with_z", HeaderAnyStartsWithZ, AnyStartsWithZ),
		boolean("all_longer_than_3", HeaderAllLongerThan3, AllLongerThan3),
	}
}
