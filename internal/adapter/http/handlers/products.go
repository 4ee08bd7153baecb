package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daveshb/taskload/internal/adapter/http/mapper"
	"github.com/daveshb/taskload/internal/adapter/http/middleware"
	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
	"github.com/daveshb/taskload/pkg/apiresponse"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct takes a multipart form: nameProduct, price and the image
// file.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := middleware.GetLang(c)

	nameProduct := c.PostForm("nameProduct")
	price, priceErr := strconv.ParseFloat(c.PostForm("price"), 64)
	fileHeader, fileErr := c.FormFile("file")
	if nameProduct == "" || priceErr != nil || fileErr != nil {
		c.JSON(http.StatusBadRequest, apiresponse.NewError(apiresponse.MsgProductFieldsRequired, lang))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apiresponse.NewError(apiresponse.MsgProductFieldsRequired, lang))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		zap.L().Error("failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiresponse.NewError(apiresponse.MsgFailCreateProduct, lang))
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), domain.CreateProductInput{
		NameProduct: nameProduct,
		Price:       price,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiresponse.NewError(apiresponse.MsgFailCreateProduct, lang))
		return
	}

	c.JSON(http.StatusCreated, apiresponse.NewSuccess(apiresponse.MsgProductCreated, lang, mapper.ToProductItem(product)))
}
