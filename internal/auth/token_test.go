package auth

import (
	"strings"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/golang-jwt/jwt/v5"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("TokenService", func() {
	var (
		cfg   internal.SecurityConfig
		clock time.Time
		svc   *TokenService
	)

	ginkgo.BeforeEach(func() {
		cfg = testSecurityConfig()
		clock = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		var err error
		svc, err = NewTokenService(cfg)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		svc.WithClock(func() time.Time { return clock })
	})

	ginkgo.It("should refuse to start without a secret", func() {
		cfg.JWTSecret = ""
		_, err := NewTokenService(cfg)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should refuse a non-positive lifetime", func() {
		cfg.JWTExpiresIn = "0"
		_, err := NewTokenService(cfg)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should round-trip the user id", func() {
		token, expiresAt, err := svc.Issue(42)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(expiresAt).To(gomega.Equal(clock.Add(time.Hour)))

		userID, err := svc.Verify(token)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(userID).To(gomega.Equal(int64(42)))
	})

	ginkgo.It("should report expiry distinctly from invalidity", func() {
		cfg.JWTExpiresIn = "1"
		short, err := NewTokenService(cfg)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		short.WithClock(func() time.Time { return clock })

		token, _, err := short.Issue(7)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		clock = clock.Add(2 * time.Second)
		_, err = short.Verify(token)
		gomega.Expect(err).To(gomega.MatchError(ErrTokenExpired))
	})

	ginkgo.It("should reject a token signed with another secret", func() {
		other := cfg
		other.JWTSecret = "another-secret"
		foreign, err := NewTokenService(other)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		token, _, err := foreign.WithClock(func() time.Time { return clock }).Issue(1)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		_, err = svc.Verify(token)
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
	})

	ginkgo.It("should reject a different issuer or audience", func() {
		for _, mutate := range []func(*internal.SecurityConfig){
			func(c *internal.SecurityConfig) { c.JWTIssuer = "someone-else" },
			func(c *internal.SecurityConfig) { c.JWTAudience = "another-app" },
		} {
			other := cfg
			mutate(&other)
			foreign, err := NewTokenService(other)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			token, _, err := foreign.WithClock(func() time.Time { return clock }).Issue(1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = svc.Verify(token)
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
		}
	})

	ginkgo.It("should reject tokens using another signing method", func() {
		claims := &Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    cfg.JWTIssuer,
				Audience:  jwt.ClaimStrings{cfg.JWTAudience},
				ExpiresAt: jwt.NewNumericDate(clock.Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.JWTSecret))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		_, err = svc.Verify(token)
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
	})

	ginkgo.It("should flag garbage as malformed", func() {
		_, err := svc.Verify("not-a-jwt")
		gomega.Expect(err).To(gomega.MatchError(ErrMalformedToken))
	})

	ginkgo.It("should reject a tampered payload", func() {
		token, _, err := svc.Issue(1)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		parts := strings.Split(token, ".")
		parts[2] = strings.Repeat("A", len(parts[2]))

		_, err = svc.Verify(strings.Join(parts, "."))
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
	})
})
