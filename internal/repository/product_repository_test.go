package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/repository"
	"github.com/javajoker/product-catalog/internal/testutil"
)

type ProductRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo repository.ProductRepository
}

func (suite *ProductRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = repository.NewProductRepository(testutil.NewSQLiteDB(suite.T()))
}

func (suite *ProductRepositoryTestSuite) save(key int64, name, brand, price string) *models.Product {
	product := &models.Product{
		ProductKey:  key,
		Brand:       models.StringPtr(brand),
		ProductName: name,
		Price:       models.MustPrice(price),
	}
	saved, err := suite.repo.Save(suite.ctx, product)
	suite.Require().NoError(err)
	return saved
}

func (suite *ProductRepositoryTestSuite) TestSaveThenFindByKey() {
	product := &models.Product{
		ProductKey:         1,
		Retailer:           models.StringPtr("Test Retailer"),
		Brand:              models.StringPtr("Test Brand"),
		Model:              models.StringPtr("Test Model"),
		ProductName:        "Test Product",
		Price:              models.MustPrice("99.99"),
		ProductDescription: models.StringPtr("Test Description"),
	}
	_, err := suite.repo.Save(suite.ctx, product)
	suite.Require().NoError(err)

	found, err := suite.repo.FindByKey(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)

	suite.Equal(int64(1), found.ProductKey)
	suite.Equal("Test Retailer", *found.Retailer)
	suite.Equal("Test Brand", *found.Brand)
	suite.Equal("Test Model", *found.Model)
	suite.Equal("Test Product", found.ProductName)
	suite.Equal("99.99", found.Price.String())
	suite.Equal("Test Description", *found.ProductDescription)
}

func (suite *ProductRepositoryTestSuite) TestSaveKeepsLargePricesExact() {
	suite.save(1, "Big", "", "12345678901234567.89")
	suite.save(2, "Small", "", "0.10")

	found, err := suite.repo.FindByKey(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("12345678901234567.89", found.Price.String())

	found, err = suite.repo.FindByKey(suite.ctx, 2)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("0.10", found.Price.String())
}

func (suite *ProductRepositoryTestSuite) TestFindByKeyAbsent() {
	found, err := suite.repo.FindByKey(suite.ctx, 404)
	suite.NoError(err)
	suite.Nil(found)

	exists, err := suite.repo.ExistsByKey(suite.ctx, 404)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *ProductRepositoryTestSuite) TestSaveReplacesExistingRow() {
	suite.save(7, "Original", "Brand A", "10.00")

	replacement := &models.Product{
		ProductKey:  7,
		Retailer:    models.StringPtr("New Retailer"),
		ProductName: "Replacement",
		Price:       models.MustPrice("79.90"),
	}
	_, err := suite.repo.Save(suite.ctx, replacement)
	suite.Require().NoError(err)

	found, err := suite.repo.FindByKey(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("Replacement", found.ProductName)
	suite.Equal("79.90", found.Price.String())
	suite.Equal("New Retailer", *found.Retailer)
	suite.Nil(found.Brand, "brand must be cleared by a full replace")

	count, err := suite.repo.Count(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *ProductRepositoryTestSuite) TestDeleteByKey() {
	suite.save(3, "Doomed", "Brand A", "1.00")

	suite.Require().NoError(suite.repo.DeleteByKey(suite.ctx, 3))

	exists, err := suite.repo.ExistsByKey(suite.ctx, 3)
	suite.NoError(err)
	suite.False(exists)

	// Deleting a missing key is not an error at this layer.
	suite.NoError(suite.repo.DeleteByKey(suite.ctx, 3))
}

func (suite *ProductRepositoryTestSuite) TestFindAllOrderedByKey() {
	suite.save(2, "Second", "", "2.00")
	suite.save(1, "First", "", "1.00")

	products, err := suite.repo.FindAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal(int64(1), products[0].ProductKey)
	suite.Equal(int64(2), products[1].ProductKey)
}

func (suite *ProductRepositoryTestSuite) TestFindAllEmpty() {
	products, err := suite.repo.FindAll(suite.ctx)
	suite.NoError(err)
	suite.NotNil(products)
	suite.Empty(products)
}

func (suite *ProductRepositoryTestSuite) TestFindByBrandIgnoreCase() {
	suite.save(1, "Phone", "Apple", "1.00")
	suite.save(2, "Laptop", "APPLE", "2.00")
	suite.save(3, "Cable", "Apple Inc", "3.00")
	suite.save(4, "Tablet", "", "4.00")

	products, err := suite.repo.FindByBrandIgnoreCase(suite.ctx, "apple")
	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal(int64(1), products[0].ProductKey)
	suite.Equal(int64(2), products[1].ProductKey)
}

func (suite *ProductRepositoryTestSuite) TestFindByNameContainingIgnoreCase() {
	suite.save(1, "iPhone 15", "Apple", "1.00")
	suite.save(2, "Smartphone Case", "Generic", "2.00")
	suite.save(3, "Laptop", "Dell", "3.00")

	products, err := suite.repo.FindByNameContainingIgnoreCase(suite.ctx, "PHONE")
	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("iPhone 15", products[0].ProductName)
	suite.Equal("Smartphone Case", products[1].ProductName)
}

func (suite *ProductRepositoryTestSuite) TestFindByNameTreatsWildcardsLiterally() {
	suite.save(1, "100% Cotton Shirt", "", "1.00")
	suite.save(2, "Cotton Shirt", "", "2.00")
	suite.save(3, "usb_c cable", "", "3.00")
	suite.save(4, "usbxc cable", "", "4.00")

	products, err := suite.repo.FindByNameContainingIgnoreCase(suite.ctx, "%")
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal(int64(1), products[0].ProductKey)

	products, err = suite.repo.FindByNameContainingIgnoreCase(suite.ctx, "usb_c")
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal(int64(3), products[0].ProductKey)
}

func (suite *ProductRepositoryTestSuite) TestBrandSummary() {
	suite.save(1, "A1", "Brand A", "1.00")
	suite.save(2, "B1", "Brand B", "1.00")
	suite.save(3, "A2", "Brand A", "1.00")
	suite.save(4, "C1", "Brand C", "1.00")
	suite.save(5, "C2", "Brand C", "1.00")
	suite.save(6, "C3", "Brand C", "1.00")
	suite.save(7, "NoBrand", "", "1.00")

	rows, err := suite.repo.BrandSummary(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]repository.BrandCount{
		{Brand: "Brand C", Count: 3},
		{Brand: "Brand A", Count: 2},
		{Brand: "Brand B", Count: 1},
	}, rows)

	var branded int64
	for _, row := range rows {
		branded += row.Count
	}
	total, err := suite.repo.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(total-1, branded)
}

func (suite *ProductRepositoryTestSuite) TestBrandSummaryEmpty() {
	rows, err := suite.repo.BrandSummary(suite.ctx)
	suite.NoError(err)
	suite.Empty(rows)
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}
