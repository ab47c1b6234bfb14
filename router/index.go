package router

import (
	"shop_manager/handler"
	"shop_manager/middleware"
	"shop_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	auth.Get("/me", middleware.Protected(), handler.Me)

	v1.Get("/me", middleware.Protected(), handler.Me)
	v1.Post("/me/update", middleware.Protected(), validate.UpdateProfile(), handler.UpdateProfile)

	user := v1.Group("/users", logger.New())
	user.Get("/", middleware.Protected(), handler.GetUsers)
	user.Post("/", middleware.Protected(), validate.CreateUser(), handler.CreateUser)
	user.Get("/:userId", middleware.Protected(), validate.GetById("userId"), handler.GetUserById)
	user.Put("/:userId", middleware.Protected(), validate.UpdateUser("userId"), handler.EditUser)
	user.Delete("/:userId", middleware.Protected(), validate.GetById("userId"), handler.DeleteUser)

	address := v1.Group("/addresses", logger.New())
	address.Get("/", middleware.Protected(), handler.GetAddresses)
	address.Post("/", middleware.Protected(), validate.CreateAddress(), handler.CreateAddress)
	// "default" phải đứng trước ":addressId" để không bị nuốt làm param
	address.Get("/default", middleware.Protected(), handler.GetDefaultAddress)
	address.Get("/:addressId", middleware.Protected(), validate.GetById("addressId"), handler.GetAddressById)
	address.Put("/:addressId", middleware.Protected(), validate.UpdateAddress("addressId"), handler.EditAddress)
	address.Delete("/:addressId", middleware.Protected(), validate.GetById("addressId"), handler.DeleteAddress)

	category := v1.Group("/categories", logger.New())
	category.Get("/", handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Get("/:categoryId", validate.GetById("categoryId"), handler.GetCategoryById)
	category.Put("/:categoryId", middleware.Protected(), validate.UpdateCategory("categoryId"), handler.EditCategory)
	category.Delete("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), handler.DeleteCategory)

	product := v1.Group("/products", logger.New())
	product.Get("/", handler.GetProducts)
	product.Get("/available", handler.GetAvailableProducts)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Get("/:productId", validate.GetById("productId"), handler.GetProductById)
	product.Put("/:productId", middleware.Protected(), validate.UpdateProduct("productId"), handler.EditProduct)
	product.Delete("/:productId", middleware.Protected(), validate.GetById("productId"), handler.DeleteProduct)

	cart := v1.Group("/cart-items", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetMyCartItems)
	cart.Post("/", middleware.Protected(), validate.AddCartItem(), handler.AddCartItem)
	cart.Put("/:cartItemId", middleware.Protected(), validate.UpdateCartItem("cartItemId"), handler.EditCartItem)
	cart.Delete("/:cartItemId", middleware.Protected(), validate.GetById("cartItemId"), handler.DeleteCartItem)

	v1.Get("/admin/cart-items", middleware.Protected(), handler.GetAllCartItems)

	order := v1.Group("/orders", logger.New())
	order.Get("/", middleware.Protected(), handler.GetMyOrders)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/:orderId/items", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderItems)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Put("/:orderId", middleware.Protected(), validate.UpdateOrder("orderId"), handler.EditOrder)
	order.Delete("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.DeleteOrder)

	orderItem := v1.Group("/order-items", logger.New())
	orderItem.Post("/", middleware.Protected(), validate.AddOrderItem(), handler.AddOrderItem)
	orderItem.Get("/:orderItemId", middleware.Protected(), validate.GetById("orderItemId"), handler.GetOrderItemById)
	orderItem.Put("/:orderItemId", middleware.Protected(), validate.UpdateOrderItem("orderItemId"), handler.EditOrderItem)
	orderItem.Delete("/:orderItemId", middleware.Protected(), validate.GetById("orderItemId"), handler.DeleteOrderItem)

	review := v1.Group("/reviews", logger.New())
	review.Get("/", handler.GetReviews)
	review.Post("/", middleware.Protected(), validate.CreateReview(), handler.CreateReview)
	review.Get("/:reviewId", validate.GetById("reviewId"), handler.GetReviewById)
	review.Put("/:reviewId", middleware.Protected(), validate.UpdateReview("reviewId"), handler.EditReview)
	review.Delete("/:reviewId", middleware.Protected(), validate.GetById("reviewId"), handler.DeleteReview)

	wishlist := v1.Group("/wishlists", logger.New())
	wishlist.Get("/", middleware.Protected(), handler.GetWishlist)
	wishlist.Post("/", middleware.Protected(), validate.AddWishlist(), handler.AddWishlistItem)
	wishlist.Delete("/:wishlistId", middleware.Protected(), validate.GetById("wishlistId"), handler.DeleteWishlistItem)

	v1.Get("/dashboard", middleware.Protected(), handler.GetDashboard)

	report := v1.Group("/reports", logger.New())
	report.Get("/products/top-selling", middleware.Protected(), handler.GetTopSellingProducts)
	report.Get("/products/least-selling", middleware.Protected(), handler.GetLeastSellingProducts)
	report.Get("/products/revenue", middleware.Protected(), handler.GetProductRevenue)
	report.Get("/products/stock", middleware.Protected(), handler.GetStockLevels)
	report.Get("/products/distribution", middleware.Protected(), handler.GetProductDistribution)
	report.Get("/products/sales", middleware.Protected(), handler.GetSalesReport)
}
