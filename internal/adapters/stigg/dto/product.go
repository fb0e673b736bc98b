package dto

type ProductNode struct {
	ID                 string            `json:"id"`
	RefID              string            `json:"refId"`
	DisplayName        string            `json:"displayName"`
	Description        string            `json:"description"`
	EnvironmentID      string            `json:"environmentId,omitempty"`
	AdditionalMetaData map[string]string `json:"additionalMetaData,omitempty"`
}

type ProductEdge struct {
	Node ProductNode `json:"node"`
}

type ProductsQueryData struct {
	Products struct {
		Edges []ProductEdge `json:"edges"`
	} `json:"products"`
}

type CreateOneProductData struct {
	CreateOneProduct *ProductNode `json:"createOneProduct"`
}

type UpdateOneProductData struct {
	UpdateOneProduct *ProductNode `json:"updateOneProduct"`
}
