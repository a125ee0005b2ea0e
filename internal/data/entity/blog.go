package entity

// Blog post owned by the creating email. AuthorEmail is a loose reference to
// users.email, resolved only during the owner-or-admin update check.
type Blog struct {
	Base
	Title       string   `db:"title"`
	Description *string  `db:"description"`
	Images      []string `db:"images"`
	AuthorEmail string   `db:"author_email"`
}
