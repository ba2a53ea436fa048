package dto

import "github.com/campus-pos/backend/internal/domain/entity"

// UpdateProfileRequest represents the request body for a profile update.
// All fields are optional; only the present ones are applied. Changing the
// PIN requires the current PIN.
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	ImageURL   *string `json:"image_url"`
	CurrentPIN *string `json:"current_pin"`
	NewPIN     *string `json:"new_pin"`
}

// UserListResponse represents the admin user listing.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserListResponse converts domain users to the listing DTO.
func ToUserListResponse(users []*entity.User) UserListResponse {
	resp := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, ToUserResponse(u))
	}
	return resp
}
