package types

// CreateMerchantProfileRequest 开店申请
type CreateMerchantProfileRequest struct {
	StoreName        string                 `json:"store_name" binding:"required"`
	StoreDescription string                 `json:"store_description"`
	Logo             string                 `json:"logo"`
	Banner           string                 `json:"banner"`
	Phone            string                 `json:"phone"`
	Address          map[string]interface{} `json:"address"`
}

type CreateMerchantProfileResponse struct {
	ID int64 `json:"id,string"`
}

type UpdateMerchantProfileRequest struct {
	Updates map[string]interface{} `json:"updates" binding:"required"`
}
