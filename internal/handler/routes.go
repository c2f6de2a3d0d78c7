package handler

import (
	"file-storage-server/internal/ports"
	"file-storage-server/internal/security"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth   *AuthenticationHandler
	User   *UserHandler
	File   *FileHandler
	Folder *FolderHandler
}

func SetupRoutes(r chi.Router, h Handlers, tokens ports.TokenService) {
	r.Get("/api/healthcheck", HealthCheck)

	setupUserRoutes(r, h.Auth, h.User, tokens)
	setupFileRoutes(r, h.File, tokens)
	setupFolderRoutes(r, h.Folder, tokens)
}

func setupUserRoutes(r chi.Router, auth *AuthenticationHandler, h *UserHandler, tokens ports.TokenService) {
	r.Route("/user", func(r chi.Router) {
		r.Post("/token", auth.Login)
		r.Post("/register", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(security.RequireAuth(tokens))
			r.Get("/users/me", h.GetCurrentUser)
		})
	})
}

func setupFileRoutes(r chi.Router, h *FileHandler, tokens ports.TokenService) {
	r.Route("/api/file", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.OptionalAuth(tokens))
			r.Post("/save", h.SaveFile)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.RequireAuth(tokens))
			r.Post("/{folderId}/save", h.SaveFileToFolder)
			r.Get("/all", h.ListFiles)
			r.Get("/folder/{folderId}/all", h.ListFolderFiles)
			r.Get("/download/{key}", h.DownloadFile)
			r.Delete("/delete/{key}", h.DeleteFile)
		})
	})
}

func setupFolderRoutes(r chi.Router, h *FolderHandler, tokens ports.TokenService) {
	r.Route("/api/folder", func(r chi.Router) {
		r.Use(security.RequireAuth(tokens))
		r.Post("/create", h.CreateFolder)
		r.Get("/all", h.ListFolders)
		r.Delete("/delete/{folderId}", h.DeleteFolder)
	})
}
