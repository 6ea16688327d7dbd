package controllers

import (
	"net/http"

	"shilpgroup-io/backoffice/helper"
	"shilpgroup-io/backoffice/services/upstream"

	"github.com/gin-gonic/gin"
)

func ListProjects(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := client.ListProjects(upstreamCtx(c), c.Query("type"))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load projects"))
			return
		}
		helper.HandleSuccessMeta(c, http.StatusOK, "projects", list.Projects, list.Pagination)
	}
}

func GetProject(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := client.GetProject(upstreamCtx(c), c.Param("id"))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load project"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "project", project)
	}
}

func DeleteProject(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := client.DeleteProject(upstreamCtx(c), c.Param("id"))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to delete project"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, msg, nil)
	}
}

// ToggleProjectStatus flips a project's visibility on the public site.
func ToggleProjectStatus(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IsActive bool `json:"isActive"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid status payload")
			return
		}

		project, err := client.ToggleProjectStatus(upstreamCtx(c), c.Param("id"), req.IsActive)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to update project status"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "project status updated", project)
	}
}
