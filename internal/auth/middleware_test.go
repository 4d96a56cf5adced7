package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Auth Guard", func() {
	var (
		store   *mockUserStore
		tokens  *TokenService
		guard   http.Handler
		reached bool
		seenID  int64
	)

	ginkgo.BeforeEach(func() {
		var err error
		store = newMockUserStore()
		tokens, err = NewTokenService(testSecurityConfig())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		reached = false
		seenID = 0
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			seenID, _ = internal.UserIDFromContext(r.Context())
			if _, ok := UserFromContext(r.Context()); !ok {
				seenID = -1
			}
			w.WriteHeader(http.StatusNoContent)
		})
		guard = NewGuard(tokens, store, nil).Middleware(next)
	})

	serve := func(header string) (*httptest.ResponseRecorder, string) {
		req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		guard.ServeHTTP(w, req)

		var body internal.ErrorBody
		if w.Code != http.StatusNoContent {
			gomega.Expect(json.NewDecoder(w.Body).Decode(&body)).To(gomega.Succeed())
		}
		return w, body.Message
	}

	ginkgo.It("should reject a missing header without touching the store", func() {
		w, msg := serve("")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(msg).To(gomega.Equal("Access denied. No token provided."))
		gomega.Expect(store.lookups).To(gomega.BeZero())
		gomega.Expect(reached).To(gomega.BeFalse())
	})

	ginkgo.It("should reject a header that is not a bearer credential", func() {
		w, msg := serve("Basic dXNlcjpwYXNz")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(msg).To(gomega.Equal("Access denied. No token provided."))
	})

	ginkgo.It("should reject an invalid token without touching the store", func() {
		w, msg := serve("Bearer not-a-jwt")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(msg).To(gomega.Equal("Invalid token."))
		gomega.Expect(store.lookups).To(gomega.BeZero())
	})

	ginkgo.It("should say when the token has expired", func() {
		cfg := testSecurityConfig()
		cfg.JWTExpiresIn = "1"
		old, err := NewTokenService(cfg)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		past := time.Now().Add(-2 * time.Second)
		token, _, err := old.WithClock(func() time.Time { return past }).Issue(1)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		w, msg := serve("Bearer " + token)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(msg).To(gomega.Equal("Token expired."))
	})

	ginkgo.It("should reject a valid token whose user no longer exists", func() {
		token, _, err := tokens.Issue(99)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		w, msg := serve("Bearer " + token)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(msg).To(gomega.Equal("Invalid token. User not found."))
	})

	ginkgo.It("should answer 500 when the store is unreachable", func() {
		u := store.add("user@example.com", "secret1")
		token, _, err := tokens.Issue(u.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		store.errorToReturn = errors.New("connection reset")

		w, msg := serve("Bearer " + token)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusInternalServerError))
		gomega.Expect(msg).To(gomega.Equal("Server authentication error."))
	})

	ginkgo.It("should pass the identity downstream", func() {
		u := store.add("user@example.com", "secret1")
		token, _, err := tokens.Issue(u.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		w, _ := serve("Bearer " + token)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusNoContent))
		gomega.Expect(reached).To(gomega.BeTrue())
		gomega.Expect(seenID).To(gomega.Equal(u.ID))
	})
})
