package utils

import "strings"

// GenreSeparator joins genre names in the persisted genres column.
const GenreSeparator = ","

// SplitGenres splits a stored genres string on commas.  No trimming or
// deduplication is done.  Callers must not pass an empty string when they
// expect an empty list: strings.Split returns [""] for it.
func SplitGenres(raw string) []string {
	return strings.Split(raw, GenreSeparator)
}

// JoinGenres is the inverse of SplitGenres and is used when a form submits
// several genres values.
func JoinGenres(genres []string) string {
	return strings.Join(genres, GenreSeparator)
}
