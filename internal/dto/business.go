package dto

import "github.com/muhamadbasim/Lokanant/internal/core/domain"

// BusinessResponse defines the data returned for an UMKM profile.
type BusinessResponse struct {
	domain.Business
	CreditStatus    domain.CreditStatus `json:"creditStatus"`
	Recommendations []string            `json:"recommendations"`
}

// ListBusinessesParams defines query parameters for listing businesses.
type ListBusinessesParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ToBusinessResponse converts a domain.Business, adding its derived status and recommendations.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		Business:        *b,
		CreditStatus:    b.Status(),
		Recommendations: b.Recommendations(),
	}
}

// ToListBusinessResponse converts a slice of domain.Business.
func ToListBusinessResponse(bs []domain.Business) []BusinessResponse {
	res := make([]BusinessResponse, len(bs))
	for i := range bs {
		res[i] = ToBusinessResponse(&bs[i])
	}
	return res
}
