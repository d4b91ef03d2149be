// Package carnet ties the portal scraper, the grade statistics and
// the persisted per-user state together behind one service type.
package carnet

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"carnet-backend/lib/gradebook"
	"carnet-backend/lib/ignorestore"
	"carnet-backend/lib/keychain"
	"carnet-backend/lib/scrapers/semflo"
	"carnet-backend/lib/textutil"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/carnet")

var ErrNotLoggedIn = fmt.Errorf("not logged in")

// keychain namespace under which remembered portal credentials live
const credentialNamespace = "semflo"

type Service struct {
	client  *semflo.Client
	ignores ignorestore.Store
	keys    keychain.Keychain

	// identity of the logged-in user, "" until Login succeeds.
	// guards every operation that needs the authenticated session.
	user string
}

type Options struct {
	Client   *semflo.Client
	Database *sql.DB
}

func NewService(opts Options) *Service {
	return &Service{
		client:  opts.Client,
		ignores: ignorestore.NewStore(opts.Database),
		keys:    keychain.New(opts.Database),
	}
}

// RememberedCredentials returns the stored email/password pair, zero
// when nothing is remembered.
func (s *Service) RememberedCredentials(ctx context.Context) (keychain.UsernamePasswordKey, error) {
	return s.keys.GetUsernamePassword(ctx, credentialNamespace)
}

// Login authenticates against the portal. With remember set the
// credentials are stored for the next run, otherwise any stored pair
// is dropped.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) error {
	ctx, span := tracer.Start(ctx, "service:Login")
	defer span.End()

	err := s.client.LoginEmailPassword(ctx, email, password)
	if err != nil {
		span.SetStatus(codes.Error, "login failed")
		return err
	}
	s.user = email

	if remember {
		err = s.keys.SetUsernamePassword(ctx, credentialNamespace, keychain.UsernamePasswordKey{
			Username: email,
			Password: password,
		})
	} else {
		err = s.keys.DeleteUsernamePassword(ctx, credentialNamespace)
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to update remembered credentials", "err", err)
	}
	return nil
}

func (s *Service) Logout() {
	s.client.Logout()
	s.user = ""
}

func (s *Service) Courses(ctx context.Context) ([]semflo.Course, error) {
	ctx, span := tracer.Start(ctx, "service:Courses")
	defer span.End()

	if s.user == "" {
		return nil, ErrNotLoggedIn
	}

	html, err := s.client.FetchCourseList(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch course list")
		return nil, err
	}
	return semflo.ParseCourses(html, s.client.BaseUrl), nil
}

// MatchCourse picks the course best matching a user-typed name.
// An exact normalized match wins, otherwise the Jaro-Winkler closest
// name does.
func MatchCourse(courses []semflo.Course, query string) (semflo.Course, bool) {
	normalized := textutil.NormalizeName(query)

	var best semflo.Course
	bestSimilarity := 0.0
	for _, course := range courses {
		name := textutil.NormalizeName(course.Name)
		if name == normalized {
			return course, true
		}
		similarity := matchr.JaroWinkler(normalized, name, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = course
		}
	}

	return best, bestSimilarity > 0
}

// Gradebook fetches and aggregates a single grading period.
func (s *Service) Gradebook(ctx context.Context, course semflo.Course, period int) (gradebook.View, error) {
	ctx, span := tracer.Start(ctx, "service:Gradebook")
	defer span.End()

	if s.user == "" {
		return gradebook.View{}, ErrNotLoggedIn
	}

	html, err := s.client.FetchGradebook(ctx, semflo.PeriodUrl(course.GradebookUrl, period))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch gradebook")
		return gradebook.View{}, err
	}

	view, err := s.buildView(ctx, course, semflo.ParseGradebook(html))
	if err != nil {
		return gradebook.View{}, err
	}
	view.Period = period
	return view, nil
}

// TotalGradebook fetches every grading period concurrently and
// aggregates the merged entries. The merge waits for all fetches:
// the statistics are not incremental. A period that fails to load is
// skipped, the way a period with no grades yet would be.
func (s *Service) TotalGradebook(ctx context.Context, course semflo.Course) (gradebook.View, error) {
	ctx, span := tracer.Start(ctx, "service:TotalGradebook")
	defer span.End()

	if s.user == "" {
		return gradebook.View{}, ErrNotLoggedIn
	}

	perPeriod := make([][]semflo.GradeEntry, len(semflo.TotalPeriods))
	wg := sync.WaitGroup{}
	for i, period := range semflo.TotalPeriods {
		wg.Add(1)
		go func(i, period int) {
			defer wg.Done()

			html, err := s.client.FetchGradebook(ctx, semflo.PeriodUrl(course.GradebookUrl, period))
			if err != nil {
				slog.WarnContext(ctx, "failed to fetch period gradebook", "period", period, "err", err)
				return
			}
			perPeriod[i] = semflo.ParseGradebook(html)
		}(i, period)
	}
	wg.Wait()

	var entries []semflo.GradeEntry
	for _, pageEntries := range perPeriod {
		entries = append(entries, pageEntries...)
	}

	view, err := s.buildView(ctx, course, entries)
	if err != nil {
		return gradebook.View{}, err
	}
	view.Total = true
	return view, nil
}

func (s *Service) buildView(ctx context.Context, course semflo.Course, entries []semflo.GradeEntry) (gradebook.View, error) {
	keys, err := s.ignores.Keys(ctx, s.user)
	if err != nil {
		return gradebook.View{}, err
	}
	return gradebook.BuildView(course, entries, gradebook.IgnoreSet(keys)), nil
}

// ToggleIgnore flips an entry's persisted ignored state and reports
// the new state. The next Gradebook call picks it up.
func (s *Service) ToggleIgnore(ctx context.Context, course semflo.Course, entry semflo.GradeEntry) (bool, error) {
	if s.user == "" {
		return false, ErrNotLoggedIn
	}

	key := gradebook.ExamKey(course.Id(), entry)
	keys, err := s.ignores.Keys(ctx, s.user)
	if err != nil {
		return false, err
	}

	if _, ok := keys[key]; ok {
		return false, s.ignores.Remove(ctx, s.user, key)
	}
	return true, s.ignores.Add(ctx, s.user, key)
}
