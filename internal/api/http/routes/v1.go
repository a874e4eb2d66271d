package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
	authdomain "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
	authhttp "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/http"
	authmw "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/middleware"
	authservice "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/service"
	contacthttp "github.com/SAI-CHANDHAN/My-portfolio/internal/contact/http"
	contactservice "github.com/SAI-CHANDHAN/My-portfolio/internal/contact/service"
	projecthttp "github.com/SAI-CHANDHAN/My-portfolio/internal/projects/http"
	projectservice "github.com/SAI-CHANDHAN/My-portfolio/internal/projects/service"
	skillhttp "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/http"
	skillservice "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/service"
)

type V1Deps struct {
	Projects *projectservice.ProjectService
	Skills   *skillservice.SkillService
	Contact  *contactservice.ContactService
	Auth     *authservice.AuthService
	Verifier auth.Verifier

	// PasswordLogin mounts POST /auth/login.
	PasswordLogin bool
	ContactLimit  gin.HandlerFunc
	LoginLimit    gin.HandlerFunc
}

// RegisterV1 mounts every resource under api. Admin routes run Authenticate
// then RequireRole(admin).
func RegisterV1(api *gin.RouterGroup, dep V1Deps) {
	authn := authmw.Authenticate(dep.Verifier)
	admin := []gin.HandlerFunc{authn, authmw.RequireRole(authdomain.RoleAdmin)}

	authhttp.New(dep.Auth, dep.LoginLimit).Register(api.Group("/auth"), authn, dep.PasswordLogin)
	projecthttp.New(dep.Projects).Register(api.Group("/projects"), admin...)
	skillhttp.New(dep.Skills).Register(api.Group("/skills"), admin...)
	contacthttp.New(dep.Contact, dep.ContactLimit).Register(api.Group("/contact"), admin...)
}
