package enroll_test

import (
	"log/slog"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	httpapi "github.com/sablehq/enrolld/internal/enroll/http"
	"github.com/sablehq/enrolld/internal/enroll/service"
	"github.com/sablehq/enrolld/internal/enroll/store/drivers/sqlite"
	"github.com/sablehq/enrolld/pkg/mailx"
	"github.com/sablehq/enrolld/pkg/regsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for registration service end-to-end tests. The service is
 * assembled in-process around an in-memory database and a memory e-mail
 * sender, and exposed through httptest so the SDK client exercises the real
 * HTTP surface.
 */

const (
	testEmail    = "john.doe@example.org"
	testPassword = "hunter2"

	// Deliberate stalls are shrunk so the suite stays fast while the
	// ordering guarantees still hold.
	testAuthDelay      = 10 * time.Millisecond
	testCodeCheckDelay = 10 * time.Millisecond
)

var codeBodyPattern = regexp.MustCompile(`verification code: ([0-9]{4})`)

// testEnv bundles everything a test needs to drive the service.
type testEnv struct {
	Client *regsdk.Client
	Sender *mailx.MemorySender
	Users  *service.UserService
}

// setupService assembles the service in-process and returns a client
// pointed at it. codeValidity controls how long validation codes live; a
// negative value makes every code born expired.
func setupService(t *testing.T, codeValidity time.Duration) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.DiscardHandler)
	sender := mailx.NewMemorySender()

	users := &service.UserService{
		Store:          st,
		Sender:         sender,
		Logger:         logger,
		From:           "noreply@example.org",
		CodeValidity:   codeValidity,
		CodeCheckDelay: testCodeCheckDelay,
	}
	t.Cleanup(users.Wait)

	router := httpapi.NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Delay: testAuthDelay}
	router.UserService = users
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		Client: regsdk.NewClient(server.URL),
		Sender: sender,
		Users:  users,
	}
}

// sentCode waits for background deliveries to land and extracts the
// validation code from the most recent e-mail to the given address.
func (env *testEnv) sentCode(t *testing.T, to string) string {
	t.Helper()

	env.Users.Wait()

	messages := env.Sender.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].To != to {
			continue
		}
		match := codeBodyPattern.FindStringSubmatch(messages[i].Body)
		require.NotNil(t, match, "no code found in e-mail body: %q", messages[i].Body)
		return match[1]
	}

	t.Fatalf("no e-mail delivered to %s", to)
	return ""
}

// requireProblem asserts that err is a *regsdk.Problem with the given
// status and type URN.
func requireProblem(t *testing.T, err error, status int, urn string) *regsdk.Problem {
	t.Helper()

	var problem *regsdk.Problem
	require.ErrorAs(t, err, &problem)
	require.Equal(t, status, problem.Status)
	require.Equal(t, urn, problem.Type)
	require.NotEmpty(t, problem.CorrelationID)
	return problem
}
