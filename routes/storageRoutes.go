package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dopetech/dopetech-api/controllers"
)

func StorageRoutes(server *gin.Engine, qrCodes *controllers.QRCodeController, assets *controllers.AssetController, productImageStorage, qrCodeStorage *controllers.StorageController) {
	api := server.Group("/api")
	{
		api.GET("/qr-codes", qrCodes.GetQRCodes)
		api.POST("/qr-codes", qrCodes.CreateQRCode)

		api.GET("/assets", assets.GetAssets)
		api.POST("/assets", assets.UploadAsset)

		api.GET("/storage/product-images", productImageStorage.GetFiles)
		api.POST("/storage/product-images", productImageStorage.UploadFile)
		api.DELETE("/storage/product-images", productImageStorage.DeleteFile)

		api.GET("/storage/qr-codes", qrCodeStorage.GetFiles)
		api.POST("/storage/qr-codes", qrCodeStorage.UploadFile)
		api.DELETE("/storage/qr-codes", qrCodeStorage.DeleteFile)
	}
}
