package domain

type Product struct {
	ID          string
	NameProduct string
	Price       float64
	File        string
}

// CreateProductInput carries the raw image bytes; the service hands them
// to an ImageStore and persists the resulting URL.
type CreateProductInput struct {
	NameProduct string
	Price       float64
	FileName    string
	ContentType string
	Data        []byte
}
