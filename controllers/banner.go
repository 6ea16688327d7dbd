package controllers

import (
	"errors"
	"net/http"

	"shilpgroup-io/backoffice/helper"
	"shilpgroup-io/backoffice/services/upstream"

	"github.com/gin-gonic/gin"
)

func GetBanners(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := client.GetBanners(upstreamCtx(c))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load banners"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "banners", banners)
	}
}

// UpdateBannerImage forwards a banner image upload to the backend. The
// field param picks the desktop or mobile variant of the section.
func UpdateBannerImage(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		field := c.Param("field")
		if field != "banner" && field != "mobilebanner" {
			err := errors.New("field must be banner or mobilebanner")
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "image is required")
			return
		}
		src, err := fileHeader.Open()
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "failed to read upload")
			return
		}
		defer src.Close()

		banners, err := client.UpdateBannerImage(upstreamCtx(c), c.Param("section"), field, c.PostForm("alt"), &upstream.Upload{
			Name:   fileHeader.Filename,
			Reader: src,
		})
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to update banner"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "banner updated", banners)
	}
}

func UpdateBannerAlt(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Alt string `json:"alt" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "alt text is required")
			return
		}

		banners, err := client.UpdateBannerAlt(upstreamCtx(c), c.Param("section"), req.Alt)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to update banner alt"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "banner alt updated", banners)
	}
}
