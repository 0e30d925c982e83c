// Package view renders the HTML pages of the user directory. Each page
// is exposed as a templ.Component so handlers render uniformly with
// view.XxxPage(...).Render(r.Context(), w).
package view

import (
	"html/template"
	"strconv"

	"github.com/a-h/templ"

	"github.com/kmdeck/userdir/internal/domain"
)

// Flash is a one-shot notice shown at the top of a page.
// Kind is one of "success", "error", or "warning".
type Flash struct {
	Kind    string
	Message string
}

// ProfileForm carries the raw values and field errors of a profile form,
// so a failed submission re-renders with everything the person typed.
type ProfileForm struct {
	Username  string
	FullName  string
	Email     string
	Age       string
	Bio       string
	Errors    map[string][]string
	CSRFToken string
}

// FormFromUser pre-populates a form from an existing record, for the
// read-only side of the update flow.
func FormFromUser(u *domain.User, csrfToken string) ProfileForm {
	form := ProfileForm{
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Bio:       u.Bio,
		CSRFToken: csrfToken,
	}
	if u.Age != nil {
		form.Age = strconv.Itoa(*u.Age)
	}
	return form
}

type listData struct {
	Flashes []Flash
	Users   []domain.User
}

type formData struct {
	Flashes []Flash
	Title   string
	Action  string
	Form    ProfileForm
}

type profileData struct {
	Flashes     []Flash
	User        *domain.User
	Age         string
	DeleteToken string
}

type errorData struct {
	Flashes []Flash
	Message string
}

// ListPage renders the user list, newest first.
func ListPage(users []domain.User, flashes []Flash) templ.Component {
	return templ.FromGoHTML(listTmpl, listData{Flashes: flashes, Users: users})
}

// RegisterPage renders the registration form.
func RegisterPage(form ProfileForm, flashes []Flash) templ.Component {
	return templ.FromGoHTML(formTmpl, formData{
		Flashes: flashes,
		Title:   "Register",
		Action:  "/register",
		Form:    form,
	})
}

// UpdatePage renders the edit form for the user with the given id.
func UpdatePage(id int64, form ProfileForm, flashes []Flash) templ.Component {
	return templ.FromGoHTML(formTmpl, formData{
		Flashes: flashes,
		Title:   "Update profile",
		Action:  "/update/" + strconv.FormatInt(id, 10),
		Form:    form,
	})
}

// ProfilePage renders one user's full record with a delete form.
func ProfilePage(user *domain.User, deleteToken string, flashes []Flash) templ.Component {
	age := ""
	if user.Age != nil {
		age = strconv.Itoa(*user.Age)
	}
	return templ.FromGoHTML(profileTmpl, profileData{
		Flashes:     flashes,
		User:        user,
		Age:         age,
		DeleteToken: deleteToken,
	})
}

// ErrorPage renders a generic failure page.
func ErrorPage(message string) templ.Component {
	return templ.FromGoHTML(errorTmpl, errorData{Message: message})
}

var (
	listTmpl    = mustPage(listContent)
	formTmpl    = mustPage(formContent)
	profileTmpl = mustPage(profileContent)
	errorTmpl   = mustPage(errorContent)
)

// mustPage combines the shared layout with one page's content block.
func mustPage(content string) *template.Template {
	t := template.Must(template.New("page").Parse(layout))
	return template.Must(t.Parse(content))
}
