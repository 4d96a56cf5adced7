package postgres_test

import (
	"context"
	"testing"

	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	budgetDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/budget"
	"github.com/frahmantamala/budget-tracker/internal/testdb"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestCategoryPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Postgres Suite")
}

var _ = Describe("Category PostgreSQL Repository", func() {
	var (
		db       *gorm.DB
		repo     category.RepositoryAPI
		ctx      context.Context
		owner    int64
		stranger int64
	)

	BeforeEach(func() {
		var err error
		db, err = testdb.Open()
		Expect(err).NotTo(HaveOccurred())
		repo = categoryPostgres.NewCategoryRepository(db)
		ctx = context.Background()

		owner, err = testdb.SeedUser(db, "owner@example.com")
		Expect(err).NotTo(HaveOccurred())
		stranger, err = testdb.SeedUser(db, "stranger@example.com")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("should create a new category successfully", func() {
			c := category.NewCategory(owner, "Food", "")
			Expect(repo.Create(ctx, c)).To(Succeed())
			Expect(c.ID).To(BeNumerically(">", 0))
			Expect(c.Color).To(Equal(category.DefaultColor))
		})

		It("should reject the same name in another casing for one owner", func() {
			Expect(repo.Create(ctx, category.NewCategory(owner, "Food", ""))).To(Succeed())

			err := repo.Create(ctx, category.NewCategory(owner, "food", ""))
			Expect(err).To(MatchError(category.ErrNameTaken))
		})

		It("should allow the same name for different owners", func() {
			Expect(repo.Create(ctx, category.NewCategory(owner, "Food", ""))).To(Succeed())
			Expect(repo.Create(ctx, category.NewCategory(stranger, "food", ""))).To(Succeed())
		})
	})

	Describe("ListByOwner", func() {
		BeforeEach(func() {
			for _, name := range []string{"Travel", "Bills", "Food"} {
				Expect(repo.Create(ctx, category.NewCategory(owner, name, ""))).To(Succeed())
			}
			Expect(repo.Create(ctx, category.NewCategory(stranger, "Hidden", ""))).To(Succeed())
		})

		It("should return only the owner's categories ordered by name", func() {
			categories, err := repo.ListByOwner(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(HaveLen(3))
			Expect(categories[0].Name).To(Equal("Bills"))
			Expect(categories[1].Name).To(Equal("Food"))
			Expect(categories[2].Name).To(Equal("Travel"))
		})
	})

	Describe("owner scoping", func() {
		var food *category.Category

		BeforeEach(func() {
			food = category.NewCategory(owner, "Food", "#FF0000")
			Expect(repo.Create(ctx, food)).To(Succeed())
		})

		It("should hide the category from other owners", func() {
			_, err := repo.GetByID(ctx, stranger, food.ID)
			Expect(err).To(MatchError(category.ErrNotFound))

			found, err := repo.GetByID(ctx, owner, food.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Color).To(Equal("#FF0000"))
		})

		It("should look up by the lowercased name", func() {
			found, err := repo.GetByNameKey(ctx, owner, "food")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(food.ID))

			_, err = repo.GetByNameKey(ctx, stranger, "food")
			Expect(err).To(MatchError(category.ErrNotFound))
		})

		It("should refuse to delete another owner's category", func() {
			Expect(repo.Delete(ctx, stranger, food.ID)).To(MatchError(category.ErrNotFound))
			_, err := repo.GetByID(ctx, owner, food.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("should rename and keep the name key in step", func() {
			c := category.NewCategory(owner, "Food", "")
			Expect(repo.Create(ctx, c)).To(Succeed())

			c.Rename("Groceries")
			c.Recolor("#00FF00")
			Expect(repo.Update(ctx, c)).To(Succeed())

			found, err := repo.GetByNameKey(ctx, owner, "groceries")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Color).To(Equal("#00FF00"))
		})

		It("should report a clash with a sibling", func() {
			Expect(repo.Create(ctx, category.NewCategory(owner, "Food", ""))).To(Succeed())
			travel := category.NewCategory(owner, "Travel", "")
			Expect(repo.Create(ctx, travel)).To(Succeed())

			travel.Rename("FOOD")
			Expect(repo.Update(ctx, travel)).To(MatchError(category.ErrNameTaken))
		})
	})

	Describe("Delete", func() {
		It("should remove the category's budgets with it", func() {
			food := category.NewCategory(owner, "Food", "")
			Expect(repo.Create(ctx, food)).To(Succeed())
			bills := category.NewCategory(owner, "Bills", "")
			Expect(repo.Create(ctx, bills)).To(Succeed())

			for _, id := range []int64{food.ID, bills.ID} {
				Expect(db.Create(&budgetDatamodel.Budget{
					UserID: owner, CategoryID: id, Month: "2024-03", Amount: decimal.NewFromInt(100),
				}).Error).To(Succeed())
			}

			Expect(repo.Delete(ctx, owner, food.ID)).To(Succeed())

			var remaining []budgetDatamodel.Budget
			Expect(db.Find(&remaining).Error).To(Succeed())
			Expect(remaining).To(HaveLen(1))
			Expect(remaining[0].CategoryID).To(Equal(bills.ID))

			_, err := repo.GetByID(ctx, owner, food.ID)
			Expect(err).To(MatchError(category.ErrNotFound))
		})
	})
})
