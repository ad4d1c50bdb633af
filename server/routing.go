package server

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"dreamcatcher/api/codegen"
	"dreamcatcher/api/projects"
	"dreamcatcher/api/sessions"
	"dreamcatcher/api/user"
	"dreamcatcher/generator"
)

var Version = "unknown"

func BackendRouting(
	DB *gorm.DB,
	gateway *generator.Gateway,
	cookieDomain string,
) *http.ServeMux {
	mux := http.NewServeMux()
	v1PrivateApis := http.NewServeMux()

	userHandler := &user.UserHandler{DB: DB, CookieDomain: cookieDomain}
	projectsHandler := &projects.ProjectsHandler{DB: DB, Gateway: gateway}
	sessionsHandler := &sessions.SessionsHandler{DB: DB}
	codegenHandler := &codegen.CodegenHandler{DB: DB, Gateway: gateway}

	v1PrivateApis.HandleFunc("GET /user/self", userHandler.Self)
	v1PrivateApis.HandleFunc("POST /user/logout", userHandler.Logout)

	v1PrivateApis.HandleFunc("POST /projects/create", projectsHandler.Create)
	v1PrivateApis.HandleFunc("GET /projects/list", projectsHandler.List)
	v1PrivateApis.HandleFunc("GET /projects/{project_uuid}", projectsHandler.Get)
	v1PrivateApis.HandleFunc("DELETE /projects/{project_uuid}", projectsHandler.Delete)
	v1PrivateApis.HandleFunc("POST /projects/{project_uuid}/collaborators/add", projectsHandler.AddCollaborator)

	v1PrivateApis.HandleFunc("POST /projects/{project_uuid}/sessions/start", sessionsHandler.Start)
	v1PrivateApis.HandleFunc("GET /projects/{project_uuid}/sessions/{session_uuid}/history", sessionsHandler.History)

	v1PrivateApis.HandleFunc("POST /codegen/generate", codegenHandler.Generate)
	v1PrivateApis.HandleFunc("POST /codegen/complete", codegenHandler.Complete)
	v1PrivateApis.HandleFunc("POST /codegen/refactor", codegenHandler.Refactor)

	mux.HandleFunc("POST /api/v1/user/register", userHandler.Register)
	mux.HandleFunc("POST /api/v1/user/login", userHandler.Login)

	mux.HandleFunc("GET /_health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "healthy",
			"service":   "dreamcatcher",
			"version":   Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", Logging(AuthMiddleware(DB)(v1PrivateApis))))

	return mux
}
