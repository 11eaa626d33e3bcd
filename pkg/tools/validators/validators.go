package validators

import "regexp"

const (
	emailValRegexStr = "^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$"
	urlValRegexStr   = "^https?://[^\\s]+$"
)

func Email(email string) bool {
	var emailRegex = regexp.MustCompile(emailValRegexStr)
	return emailRegex.MatchString(email)
}

func URL(url string) bool {
	var urlRegex = regexp.MustCompile(urlValRegexStr)
	return urlRegex.MatchString(url)
}
