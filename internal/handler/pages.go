package handler

import "net/http"

// HandleIndex renders the landing page.
func HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, r, "index.html", pageData{SocialLinks: socials()})
	}
}

// HandleSubtypeQuiz renders the static subtype quiz page.
func HandleSubtypeQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, r, "subtype_quiz.html", pageData{SocialLinks: socials()})
	}
}
