package comments

// Comment is one visitor-submitted record awaiting admin review. Field order
// mirrors the stored document; the optional contact fields are only written
// when the visitor supplied them.
type Comment struct {
	Category    string `json:"category"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description"`
}

// ContactRequest is the form payload of POST /contact.
type ContactRequest struct {
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required"`
	Name        string `form:"name"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
}
