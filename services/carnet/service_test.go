package carnet

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	ignoredb "carnet-backend/lib/ignorestore/db"
	keychaindb "carnet-backend/lib/keychain/db"
	"carnet-backend/lib/scrapers/semflo"
	"carnet-backend/lib/testutil"

	"github.com/stretchr/testify/require"
)

const (
	testToken    = "tok-1234"
	testEmail    = "alice@example.com"
	testPassword = "hunter2"
)

const courseListPage = `<html><body>
<table class="w-full text-md bg-white shadow-md rounded mb-4">
<tr><th>Cours</th><th>Enseignant</th><th></th></tr>
<tr>
	<td>Mathématiques</td>
	<td>M. Dupont</td>
	<td><a href="/carnet-de-notes/math-4a/p2">Voir</a></td>
</tr>
</table>
</body></html>`

func gradebookPage(period int) string {
	rows := map[int]string{
		1: `<tr><td></td><td>Interro rentrée</td><td>05/09/2024</td><td>6 / 10</td></tr>`,
		2: `<tr><td></td><td>Interro chapitre 1</td><td>10/11/2024</td><td>8 / 10</td></tr>
<tr><td></td><td>Devoir maison</td><td>en attente</td><td>absent</td></tr>`,
		3: `<tr><td></td><td>Examen de juin</td><td>15/06/2025</td><td>45 / 60</td></tr>`,
	}
	return fmt.Sprintf(`<html><body>
<table class="w-full text-md bg-white shadow-md rounded mb-4">
<tr><th></th><th>Titre</th><th>Date</th><th>Note</th></tr>
%s
</table>
</body></html>`, rows[period])
}

func newPortalServer() *httptest.Server {
	loggedIn := func(r *http.Request) bool {
		cookie, err := r.Cookie("session")
		return err == nil && cookie.Value == "session-abc"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprintf(
				w,
				`<html><body><form method="post">
				<input type="hidden" name="_csrf_token" value="%s"/>
				</form></body></html>`,
				testToken,
			)
			return
		}

		err := r.ParseForm()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("_csrf_token") != testToken ||
			r.PostForm.Get("email") != testEmail ||
			r.PostForm.Get("password") != testPassword {
			fmt.Fprint(w, `<html><body>Identifiants invalides.</body></html>`)
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "session", Value: "session-abc"})
		fmt.Fprint(w, `<html><body><a href="/logout">Se déconnecter</a></body></html>`)
	})
	mux.HandleFunc("/carnet-de-notes", func(w http.ResponseWriter, r *http.Request) {
		if !loggedIn(r) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, courseListPage)
	})
	for _, period := range semflo.TotalPeriods {
		period := period
		mux.HandleFunc(
			fmt.Sprintf("/carnet-de-notes/math-4a/p%d", period),
			func(w http.ResponseWriter, r *http.Request) {
				if !loggedIn(r) {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				fmt.Fprint(w, gradebookPage(period))
			},
		)
	}

	return httptest.NewServer(mux)
}

func newTestService(t *testing.T, srv *httptest.Server) (*Service, func()) {
	env, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:      "services/carnet",
		DbSchemas: []string{ignoredb.Schema, keychaindb.Schema},
	})

	client, err := semflo.NewClient(context.Background(), semflo.ClientOptions{
		BaseUrl: srv.URL,
	})
	if err != nil {
		t.Fatal(err)
	}

	return NewService(Options{Client: client, Database: env.DB}), cleanup
}

func TestServiceLogin(t *testing.T) {
	srv := newPortalServer()
	defer srv.Close()
	service, cleanup := newTestService(t, srv)
	defer cleanup()

	ctx := context.Background()

	_, err := service.Courses(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)

	err = service.Login(ctx, testEmail, "wrong-password", false)
	require.ErrorIs(t, err, semflo.ErrLoginFailed)

	err = service.Login(ctx, testEmail, testPassword, true)
	require.NoError(t, err)

	remembered, err := service.RememberedCredentials(ctx)
	require.NoError(t, err)
	require.Equal(t, testEmail, remembered.Username)
	require.Equal(t, testPassword, remembered.Password)

	// logging in without remember drops the stored pair
	service.Logout()
	err = service.Login(ctx, testEmail, testPassword, false)
	require.NoError(t, err)
	remembered, err = service.RememberedCredentials(ctx)
	require.NoError(t, err)
	require.Empty(t, remembered.Username)
}

func TestServiceGradebook(t *testing.T) {
	srv := newPortalServer()
	defer srv.Close()
	service, cleanup := newTestService(t, srv)
	defer cleanup()

	ctx := context.Background()
	err := service.Login(ctx, testEmail, testPassword, false)
	require.NoError(t, err)

	courses, err := service.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	course, ok := MatchCourse(courses, "maths")
	require.True(t, ok)
	require.Equal(t, "Mathématiques", course.Name)

	view, err := service.Gradebook(ctx, course, 2)
	require.NoError(t, err)
	require.Equal(t, 2, view.Period)
	require.False(t, view.Total)
	require.Len(t, view.Entries, 2)
	require.Equal(t, "Interro chapitre 1", view.Entries[0].Title)
	require.True(t, view.HasAverage)
	require.Equal(t, 80.0, view.Average)
}

func TestServiceTotalGradebook(t *testing.T) {
	srv := newPortalServer()
	defer srv.Close()
	service, cleanup := newTestService(t, srv)
	defer cleanup()

	ctx := context.Background()
	err := service.Login(ctx, testEmail, testPassword, false)
	require.NoError(t, err)

	courses, err := service.Courses(ctx)
	require.NoError(t, err)

	view, err := service.TotalGradebook(ctx, courses[0])
	require.NoError(t, err)
	require.True(t, view.Total)

	// merged in period order regardless of fetch completion order
	require.Len(t, view.Entries, 4)
	require.Equal(t, "Interro rentrée", view.Entries[0].Title)
	require.Equal(t, "Interro chapitre 1", view.Entries[1].Title)
	require.Equal(t, "Devoir maison", view.Entries[2].Title)
	require.Equal(t, "Examen de juin", view.Entries[3].Title)

	// (60 + 80 + 75) / 3
	require.True(t, view.HasAverage)
	require.InDelta(t, 71.67, view.Average, 0.01)
}

func TestServiceToggleIgnore(t *testing.T) {
	srv := newPortalServer()
	defer srv.Close()
	service, cleanup := newTestService(t, srv)
	defer cleanup()

	ctx := context.Background()
	err := service.Login(ctx, testEmail, testPassword, false)
	require.NoError(t, err)

	courses, err := service.Courses(ctx)
	require.NoError(t, err)
	course := courses[0]

	view, err := service.Gradebook(ctx, course, 2)
	require.NoError(t, err)
	require.Equal(t, 80.0, view.Average)

	ignored, err := service.ToggleIgnore(ctx, course, view.Entries[0].GradeEntry)
	require.NoError(t, err)
	require.True(t, ignored)

	// the next fetch sees the persisted state
	view, err = service.Gradebook(ctx, course, 2)
	require.NoError(t, err)
	require.True(t, view.Entries[0].Ignored)
	require.False(t, view.HasAverage)

	ignored, err = service.ToggleIgnore(ctx, course, view.Entries[0].GradeEntry)
	require.NoError(t, err)
	require.False(t, ignored)

	view, err = service.Gradebook(ctx, course, 2)
	require.NoError(t, err)
	require.False(t, view.Entries[0].Ignored)
	require.Equal(t, 80.0, view.Average)
}
