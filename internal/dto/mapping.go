package dto

type SaveMappingRequest struct {
	BankName string            `json:"bankName"`
	Mapping  map[string]string `json:"mapping"`
}
