package core

// Book is the immutable pairing of ISBN and title.
// It represents catalog metadata only and carries no lifecycle.
type Book struct {
	ISBN  ISBN13
	Title Title
}

// BuildBook pairs an ISBN with a title.
func BuildBook(isbn ISBN13, title Title) Book {
	return Book{
		ISBN:  isbn,
		Title: title,
	}
}

// Equals reports whether two Books describe the same catalog metadata.
func (b Book) Equals(other Book) bool {
	return b.ISBN.Equals(other.ISBN) && b.Title.Equals(other.Title)
}
