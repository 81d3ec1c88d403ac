package server

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for the plain-text bodies of 500 responses.
const (
	msgServerError     = "Server error"
	msgServerErrorCode = "Server error: %s"
)

// supportedLanguages lists the catalog languages; the first is the default.
var supportedLanguages = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var (
	languageMatcher = language.NewMatcher(supportedLanguages)
	messages        = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	must(b.SetString(language.English, msgServerError, "Server error"))
	must(b.SetString(language.English, msgServerErrorCode, "Server error: %s"))
	must(b.SetString(language.SimplifiedChinese, msgServerError, "服务器错误"))
	must(b.SetString(language.SimplifiedChinese, msgServerErrorCode, "服务器错误: %s"))
	return b
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// printerFor negotiates the response language from an Accept-Language
// header value. Malformed or empty headers select English.
func printerFor(acceptLanguage string) *message.Printer {
	tag := supportedLanguages[0]
	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
		_, index, confidence := languageMatcher.Match(tags...)
		if confidence != language.No {
			tag = supportedLanguages[index]
		}
	}
	return message.NewPrinter(tag, message.Catalog(messages))
}
