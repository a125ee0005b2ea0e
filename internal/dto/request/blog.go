package request

// Blog requests arrive as multipart form data; the handler parses the form,
// stores accepted image files, and fills these in. Images holds the public
// paths of files that survived the upload filter.
type BlogCreateRequest struct {
	Title       string  `validate:"required"`
	Description *string
	AuthorEmail string
	Images      []string
}

type BlogUpdateRequest struct {
	Title       string `validate:"required"`
	Description *string
	AuthorEmail string
	// Images is nil when no new files were uploaded; non-nil replaces the
	// whole stored image set.
	Images []string
}

type BlogListQuery struct {
	TitleQuery *string
	Ascending  bool
}
