package models

import "time"

// User is the identity record as stored. PasswordHash and PIN never leave
// the service layer; every outward representation goes through Public().
type User struct {
	ID           string    `bson:"_id,omitempty" json:"-"`
	Email        string    `bson:"email" json:"-"`
	PasswordHash string    `bson:"password" json:"-"`
	FullName     string    `bson:"full_name" json:"-"`
	Phone        string    `bson:"phone" json:"-"`
	MemberID     string    `bson:"member_id" json:"-"`
	PIN          string    `bson:"pin" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"-"`
}

// UserResponse is the outward-facing user representation. It deliberately has
// no field for the password hash or PIN.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	MemberID  string    `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips credentials from the stored record.
func (u User) Public() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		MemberID:  u.MemberID,
		CreatedAt: u.CreatedAt,
	}
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	FullName     *string
	Phone        *string
	PasswordHash *string
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type PasswordLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PINLoginRequest struct {
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// TokenResponse is the envelope returned by register and both login paths.
// The token shape is identical regardless of which path issued it.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
