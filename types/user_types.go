package types

import "time"

// Author is the reduced user projection embedded in comments and scams.
type Author struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

type UserCounts struct {
	Scams    int64 `json:"scams"`
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
}

type UserResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Bio       *string    `json:"bio"`
	Avatar    *string    `json:"avatar"`
	IsAdmin   bool       `json:"isAdmin"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	Count     UserCounts `json:"_count"`
}

type UserPatch struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio    *string `json:"bio" binding:"omitempty,max=500"`
	Avatar *string `json:"avatar" binding:"omitempty,max=500"`
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.Avatar == nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type UserStats struct {
	TotalScams    int64 `json:"totalScams"`
	ResolvedScams int64 `json:"resolvedScams"`
	TotalComments int64 `json:"totalComments"`
	TotalLikes    int64 `json:"totalLikes"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type GoogleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
