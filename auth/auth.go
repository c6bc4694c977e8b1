package auth

import (
	"net/http"

	"mandi/models"

	"github.com/julienschmidt/httprouter"
)

func CustomerSignup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	signupHandler(w, r, models.RoleCustomer)
}

func CustomerLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r, models.RoleCustomer)
}

func VendorSignup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	signupHandler(w, r, models.RoleVendor)
}

func VendorLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r, models.RoleVendor)
}

func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logoutHandler(w, r)
}
