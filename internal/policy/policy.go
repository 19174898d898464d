package policy

import "fmt"

// Policy decides whether a normalized word is admitted into the merged set.
type Policy struct {
	Tag    string
	Accept func(word string) bool
}

// Get returns the built-in policy for the given tag.
// The empty tag means "all", matching the trusted base dictionary.
func Get(tag string) (*Policy, error) {
	switch tag {
	case "all", "":
		return all(), nil
	case "strict":
		return strict(), nil
	default:
		return nil, fmt.Errorf("unknown policy %q: valid policies are all, strict", tag)
	}
}

// all admits every non-empty normalized word. Blank lines normalize to ""
// and are never words, so they are excluded even from trusted sources.
func all() *Policy {
	return &Policy{
		Tag:    "all",
		Accept: func(word string) bool { return word != "" },
	}
}

// strict admits a word only if it is longer than four characters and made
// entirely of uppercase ASCII letters. This drops phrases, hyphenated
// compounds, digits, and short fragments from the noisier supplementary
// lists; short words are presumed covered by the base dictionary.
func strict() *Policy {
	return &Policy{
		Tag: "strict",
		Accept: func(word string) bool {
			if len(word) <= 4 {
				return false
			}
			for i := 0; i < len(word); i++ {
				if word[i] < 'A' || word[i] > 'Z' {
					return false
				}
			}
			return true
		},
	}
}
