package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"placard-server/internal/infra/httpserver"
	"placard-server/internal/placard/httpapi/internal"
	"placard-server/internal/placard/usecases"
)

const (
	listProfilesErrMessage    = "failed to list profiles"
	saveProfileErrMessage     = "failed to save profile"
	loadProfileErrMessage     = "failed to load profile"
	deleteProfileErrMessage   = "failed to delete profile"
	profileNotFoundErrMessage = "profile not found"
)

func NewProfileController(service usecases.TemplateService) *ProfileController {
	return &ProfileController{
		service: service,
	}
}

var _ httpserver.Controller = &ProfileController{}

type ProfileController struct {
	service usecases.TemplateService
}

func (c *ProfileController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/profiles", c.listProfiles())
	router.Handle("POST /v1/profiles", c.saveProfile())
	router.Handle("POST /v1/profiles/{name}/load", c.loadProfile())
	router.Handle("DELETE /v1/profiles/{name}", c.deleteProfile())
}

func (c *ProfileController) listProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := c.service.ListProfiles(r.Context())
		if err != nil {
			http.Error(w, listProfilesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.ProfileResponse, len(profiles))
		for i, profile := range profiles {
			responses[i] = internal.ToProfileResponse(profile)
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ProfileListResponse{Data: responses})
	}
}

// saveProfile persists the session's current template under the given
// name. Saving an existing name overwrites it.
func (c *ProfileController) saveProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SaveProfileRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, saveProfileErrMessage, http.StatusBadRequest)
			return
		}

		profile, err := c.service.SaveProfile(r.Context(), body.Name)
		if errors.Is(err, usecases.ErrEmptyProfileName) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, saveProfileErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToProfileResponse(profile))
	}
}

// loadProfile replaces the session's current template with the named
// profile, inflated over the built-in defaults.
func (c *ProfileController) loadProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		config, err := c.service.LoadProfile(r.Context(), name)
		if errors.Is(err, usecases.ErrProfileNotFound) {
			http.Error(w, profileNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("loading profile", slog.String("name", name), slog.String("error", err.Error()))
			http.Error(w, loadProfileErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateResponse(config))
	}
}

func (c *ProfileController) deleteProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		err := c.service.DeleteProfile(r.Context(), name)
		if errors.Is(err, usecases.ErrProfileNotFound) {
			http.Error(w, profileNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, deleteProfileErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
