package content

// Visible resolves an optional show/hide flag from the store. Only an explicit
// false hides; an unset flag shows.
func Visible(flag *bool) bool {
	return flag == nil || *flag
}
