package handler

import (
	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// hamsterResponse is the summary tuple rendered for every hamster.
type hamsterResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Genre  string `json:"genre"`
	Age    int    `json:"age"`
	Hunger int    `json:"hunger"`
	Active bool   `json:"active"`
}

// userResponse is the account profile: user fields plus owned hamsters.
type userResponse struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Gold     int               `json:"gold"`
	Roles    []string          `json:"roles"`
	Hamsters []hamsterResponse `json:"hamsters"`
}

func toHamsterResponse(h *domain.Hamster) hamsterResponse {
	return hamsterResponse{
		ID:     h.ID,
		Name:   h.Name,
		Genre:  h.Genre,
		Age:    h.Age,
		Hunger: h.Hunger,
		Active: h.Active,
	}
}

func toHamsterResponses(hs []*domain.Hamster) []hamsterResponse {
	out := make([]hamsterResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, toHamsterResponse(h))
	}
	return out
}

func toUserResponse(u *domain.User, hs []*domain.Hamster) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Gold:     u.Gold,
		Roles:    u.Roles,
		Hamsters: toHamsterResponses(hs),
	}
}
