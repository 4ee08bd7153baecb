package dto

type ProductItem struct {
	ID          string  `json:"_id"`
	NameProduct string  `json:"nameProduct"`
	Price       float64 `json:"price"`
	File        string  `json:"file"`
}
