package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kmdeck/userdir/internal/domain"
	"github.com/kmdeck/userdir/internal/service"
	"github.com/kmdeck/userdir/internal/view"
)

// User-facing notices. The conflict notice deliberately does not say
// whether the username or the email collided.
const (
	noticeConflict       = "Error: username or email already exists."
	noticeInvalidRequest = "Invalid request. Please try again."
	noticeNotFound       = "User not found."
	noticeRegistered     = "User registered successfully."
	noticeUpdated        = "User updated successfully."
	noticeDeleted        = "User deleted."
	noticeDeleteFailed   = "Could not delete user."
)

// ProfileHandler serves the HTML pages of the user directory.
type ProfileHandler struct {
	profiles *service.ProfileService
	csrf     *service.CSRFService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService, csrf *service.CSRFService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, csrf: csrf}
}

// HandleList renders the user list.
// GET /
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.profiles.List(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		renderServerError(w, r)
		return
	}
	view.ListPage(users, popFlash(w, r)).Render(r.Context(), w)
}

// HandleRegisterForm renders an empty registration form.
// GET /register
func (h *ProfileHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	form := view.ProfileForm{CSRFToken: h.issueToken(r)}
	view.RegisterPage(form, popFlash(w, r)).Render(r.Context(), w)
}

// HandleRegister processes a registration submission.
// POST /register
func (h *ProfileHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if !h.consumeToken(r) {
		setFlash(w, "error", noticeInvalidRequest)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	in := formInput(r)
	_, err := h.profiles.Register(r.Context(), in)
	if err != nil {
		h.renderRegisterFailure(w, r, in, err)
		return
	}

	setFlash(w, "success", noticeRegistered)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ProfileHandler) renderRegisterFailure(w http.ResponseWriter, r *http.Request, in service.ProfileInput, err error) {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		form := formFromInput(in, fieldErrs, h.issueToken(r))
		view.RegisterPage(form, nil).Render(r.Context(), w)
	case errors.Is(err, domain.ErrConflict):
		form := formFromInput(in, nil, h.issueToken(r))
		view.RegisterPage(form, []view.Flash{{Kind: "error", Message: noticeConflict}}).Render(r.Context(), w)
	default:
		slog.Error("register user", "error", err)
		renderServerError(w, r)
	}
}

// HandleProfile renders one user's full record.
// GET /profile/{id}
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.redirectNotFound(w, r)
		return
	}

	user, err := h.profiles.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.redirectNotFound(w, r)
			return
		}
		slog.Error("get user", "id", id, "error", err)
		renderServerError(w, r)
		return
	}

	// The delete form on this page needs its own anti-forgery token.
	view.ProfilePage(user, h.issueToken(r), popFlash(w, r)).Render(r.Context(), w)
}

// HandleUpdateForm renders the edit form pre-filled with the current record.
// GET /update/{id}
func (h *ProfileHandler) HandleUpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.redirectNotFound(w, r)
		return
	}

	user, err := h.profiles.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.redirectNotFound(w, r)
			return
		}
		slog.Error("get user for update", "id", id, "error", err)
		renderServerError(w, r)
		return
	}

	form := view.FormFromUser(user, h.issueToken(r))
	view.UpdatePage(id, form, popFlash(w, r)).Render(r.Context(), w)
}

// HandleUpdate processes an edit submission.
// POST /update/{id}
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.redirectNotFound(w, r)
		return
	}

	if !h.consumeToken(r) {
		setFlash(w, "error", noticeInvalidRequest)
		http.Redirect(w, r, "/update/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}

	in := formInput(r)
	_, err := h.profiles.Update(r.Context(), id, in)
	if err != nil {
		h.renderUpdateFailure(w, r, id, in, err)
		return
	}

	setFlash(w, "success", noticeUpdated)
	http.Redirect(w, r, "/profile/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

func (h *ProfileHandler) renderUpdateFailure(w http.ResponseWriter, r *http.Request, id int64, in service.ProfileInput, err error) {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		form := formFromInput(in, fieldErrs, h.issueToken(r))
		view.UpdatePage(id, form, nil).Render(r.Context(), w)
	case errors.Is(err, domain.ErrConflict):
		form := formFromInput(in, nil, h.issueToken(r))
		view.UpdatePage(id, form, []view.Flash{{Kind: "error", Message: noticeConflict}}).Render(r.Context(), w)
	case errors.Is(err, domain.ErrNotFound):
		h.redirectNotFound(w, r)
	default:
		slog.Error("update user", "id", id, "error", err)
		renderServerError(w, r)
	}
}

// HandleDelete removes a user. The submission must carry a valid
// anti-forgery token; nothing is deleted otherwise.
// POST /delete/{id}
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.redirectNotFound(w, r)
		return
	}

	if !h.consumeToken(r) {
		setFlash(w, "error", noticeInvalidRequest)
		http.Redirect(w, r, "/profile/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}

	deleted, err := h.profiles.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.redirectNotFound(w, r)
			return
		}
		slog.Error("delete user", "id", id, "error", err)
		renderServerError(w, r)
		return
	}

	if deleted {
		setFlash(w, "success", noticeDeleted)
	} else {
		setFlash(w, "error", noticeDeleteFailed)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// redirectNotFound sends the caller back to the list with a warning notice.
func (h *ProfileHandler) redirectNotFound(w http.ResponseWriter, r *http.Request) {
	setFlash(w, "warning", noticeNotFound)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ProfileHandler) issueToken(r *http.Request) string {
	return h.csrf.Issue(SessionFromContext(r.Context()))
}

func (h *ProfileHandler) consumeToken(r *http.Request) bool {
	return h.csrf.Consume(SessionFromContext(r.Context()), r.PostFormValue("csrf_token"))
}

// pathID parses the {id} route parameter. A non-numeric id is treated
// the same as a missing record.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func formInput(r *http.Request) service.ProfileInput {
	return service.ProfileInput{
		Username: r.PostFormValue("username"),
		FullName: r.PostFormValue("full_name"),
		Email:    r.PostFormValue("email"),
		Age:      r.PostFormValue("age"),
		Bio:      r.PostFormValue("bio"),
	}
}

// formFromInput rebuilds the form view model from a submission so a
// failed attempt re-renders with everything the person typed.
func formFromInput(in service.ProfileInput, errs domain.FieldErrors, csrfToken string) view.ProfileForm {
	return view.ProfileForm{
		Username:  in.Username,
		FullName:  in.FullName,
		Email:     in.Email,
		Age:       in.Age,
		Bio:       in.Bio,
		Errors:    errs,
		CSRFToken: csrfToken,
	}
}

func renderServerError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	view.ErrorPage("An unexpected error occurred. Please try again.").Render(r.Context(), w)
}
