package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/lowlevel-labs/internal/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/list").
			To(handler.Snapshot).
			Doc("Current list contents").
			Metadata(restfulspec.KeyOpenAPITags, []string{"list"}).
			Writes(ListResponse{}).
			Returns(200, "OK", ListResponse{}))

	ws.
		Route(ws.POST("/list/values").
			To(handler.Add).
			Doc("Insert a value at a position").
			Metadata(restfulspec.KeyOpenAPITags, []string{"list"}).
			Reads(AddRequest{}).
			Writes(ListResponse{}).
			Returns(200, "OK", ListResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.DELETE("/list/values/{index}").
			To(handler.Delete).
			Doc("Remove the value at a position").
			Metadata(restfulspec.KeyOpenAPITags, []string{"list"}).
			Param(ws.PathParameter("index", "Zero-based position").DataType("integer")).
			Writes(RemoveResponse{}).
			Returns(200, "OK", RemoveResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/list/reset").
			To(handler.Reset).
			Doc("Remove every value").
			Metadata(restfulspec.KeyOpenAPITags, []string{"list"}).
			Writes(ListResponse{}).
			Returns(200, "OK", ListResponse{}))

	container.Add(ws)
}
