package util

// InPlaceFilter keeps the elements matching p, reusing the backing array of s
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}

// RemoveDuplicateStrings returns the non-empty strings in first-seen order, leaving out
// anything in ignoreList
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	present := make(map[string]bool, len(strings)+len(ignoreList))
	for _, ignore := range ignoreList {
		present[ignore] = true
	}

	var list []string
	for _, item := range strings {
		if item == "" || present[item] {
			continue
		}

		present[item] = true
		list = append(list, item)
	}

	return list
}
