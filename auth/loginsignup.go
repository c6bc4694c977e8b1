package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mandi/cart"
	"mandi/db"
	"mandi/globals"
	"mandi/middleware"
	"mandi/models"
	"mandi/rdx"
	"mandi/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 72 * time.Hour

type signupInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	StoreName string `json:"storeName"`
}

func signupHandler(w http.ResponseWriter, r *http.Request, role string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input signupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if role == models.RoleVendor && input.StoreName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	// Duplicate check on email or phone across all roles.
	err := db.UserCollection.FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": input.Email}, {"phone": input.Phone}},
	}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "User already exists")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Hash error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	now := time.Now()
	user := models.User{
		UserID:       "u" + utils.GenerateID(10),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		Role:         role,
		StoreName:    input.StoreName,
		StoreOpen:    role == models.RoleVendor,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := generateAccessToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.SendResponse(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  publicUser(user),
	}, "Signup successful", nil)
}

type loginInput struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

func loginHandler(w http.ResponseWriter, r *http.Request, role string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.EmailOrPhone == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Credentials are required")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{
		"$or":  []bson.M{{"email": input.EmailOrPhone}, {"phone": input.EmailOrPhone}},
		"role": role,
	}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := generateAccessToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	_, _ = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)

	if err := rdx.RdxHset("tokens", user.UserID, token); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  publicUser(user),
	}, "Login successful", nil)
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := rdx.RdxHdel("tokens", userID); err != nil {
		log.Printf("Redis token remove failed: %v", err)
	}

	// The cart lives only for the login session.
	cart.Sessions.Drop(userID)

	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}

func generateAccessToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Name:   user.Name,
		UserID: user.UserID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func publicUser(user models.User) map[string]any {
	out := map[string]any{
		"id":    user.UserID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	}
	if user.Role == models.RoleVendor {
		out["storeName"] = user.StoreName
	}
	return out
}
