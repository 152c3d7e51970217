package dto

type ReferenceResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Info string `json:"info"`
}
