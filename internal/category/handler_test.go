package category_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	"github.com/frahmantamala/budget-tracker/internal/testdb"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		router http.Handler
		owner  int64
		other  int64
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err := testdb.Open()
		Expect(err).NotTo(HaveOccurred())
		owner, err = testdb.SeedUser(db, "owner@example.com")
		Expect(err).NotTo(HaveOccurred())
		other, err = testdb.SeedUser(db, "other@example.com")
		Expect(err).NotTo(HaveOccurred())

		repo := categoryPostgres.NewCategoryRepository(db)
		service := category.NewService(repo, slogger)
		handler := category.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		r := chi.NewRouter()
		r.Get("/categories", handler.GetCategories)
		r.Post("/categories", handler.CreateCategory)
		r.Put("/categories/{id}", handler.UpdateCategory)
		r.Delete("/categories/{id}", handler.DeleteCategory)
		router = r
	})

	do := func(method, path string, userID int64, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if userID > 0 {
			req = req.WithContext(internal.ContextWithUserID(req.Context(), userID))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	create := func(userID int64, body string) category.CategoryResponse {
		w := do(http.MethodPost, "/categories", userID, body)
		Expect(w.Code).To(Equal(http.StatusCreated))
		var c category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&c)).To(Succeed())
		return c
	}

	It("should create a category with the default color", func() {
		c := create(owner, `{"name":"Food"}`)
		Expect(c.ID).To(BeNumerically(">", 0))
		Expect(c.Name).To(Equal("Food"))
		Expect(c.Color).To(Equal("#3B82F6"))
		Expect(c.User).To(Equal(owner))
	})

	It("should list only the caller's categories sorted by name", func() {
		create(owner, `{"name":"Travel"}`)
		create(owner, `{"name":"Bills","color":"#123456"}`)
		create(other, `{"name":"Secret"}`)

		w := do(http.MethodGet, "/categories", owner, "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var list []category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(2))
		Expect(list[0].Name).To(Equal("Bills"))
		Expect(list[1].Name).To(Equal("Travel"))
	})

	It("should answer an empty array when there are no categories", func() {
		w := do(http.MethodGet, "/categories", owner, "")
		Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
	})

	It("should refuse a duplicate name with a readable message", func() {
		create(owner, `{"name":"Food"}`)
		w := do(http.MethodPost, "/categories", owner, `{"name":"FOOD"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body internal.ErrorBody
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Message).To(Equal("Category with this name already exists"))
	})

	It("should report field errors for an invalid color", func() {
		w := do(http.MethodPost, "/categories", owner, `{"name":"Food","color":"red"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body internal.ErrorBody
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Message).To(Equal("Validation failed"))
		Expect(body.Errors).To(HaveLen(1))
		Expect(body.Errors[0].Field).To(Equal("color"))
		Expect(body.Errors[0].Value).To(Equal("red"))
	})

	It("should reject a malformed body", func() {
		w := do(http.MethodPost, "/categories", owner, `{"name":`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should update an owned category", func() {
		c := create(owner, `{"name":"Food"}`)
		w := do(http.MethodPut, "/categories/"+itoa(c.ID), owner, `{"color":"#FFFFFF"}`)
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
		Expect(updated.Name).To(Equal("Food"))
		Expect(updated.Color).To(Equal("#FFFFFF"))
	})

	It("should answer 404 for another owner's category", func() {
		c := create(owner, `{"name":"Food"}`)

		w := do(http.MethodPut, "/categories/"+itoa(c.ID), other, `{"name":"Mine"}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))

		w = do(http.MethodDelete, "/categories/"+itoa(c.ID), other, "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should reject a non-numeric id", func() {
		w := do(http.MethodDelete, "/categories/abc", owner, "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body internal.ErrorBody
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Message).To(Equal("Invalid category ID"))
	})

	It("should delete an owned category", func() {
		c := create(owner, `{"name":"Food"}`)

		w := do(http.MethodDelete, "/categories/"+itoa(c.ID), owner, "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Category deleted successfully"))

		w = do(http.MethodGet, "/categories", owner, "")
		Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
	})

	It("should answer 401 without an identity", func() {
		w := do(http.MethodGet, "/categories", 0, "")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
