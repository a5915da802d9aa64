package faq

// FAQ is one question/answer pair shown on the help page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
