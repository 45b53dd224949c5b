package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/permission"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/service"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

const (
	resourceCollectionPath = "/api/{resource}"
	resourceEntityPath     = "/api/{resource}/{id}"
)

var ErrUnknownResource = errors.New("unknown resource")

// ResourceHandler proxies one method of a collection or entity route to the backend,
// the backend status and body are written through unchanged.
type ResourceHandler struct {
	resources service.Resources
	method    string
	path      string
}

func NewResourceHandlers(resources service.Resources) []ResourceHandler {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	handlers := make([]ResourceHandler, 0, 2*len(methods))
	for _, path := range []string{resourceCollectionPath, resourceEntityPath} {
		for _, method := range methods {
			handlers = append(handlers, ResourceHandler{resources: resources, method: method, path: path})
		}
	}

	return handlers
}

func (h ResourceHandler) Method() string {
	return h.method
}

func (h ResourceHandler) Path() string {
	return h.path
}

func (h ResourceHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	resourceName, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("resource"), err)
	if err != nil {
		return err
	}

	resource, ok := permission.ParseResource(resourceName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResource, resourceName)
	}

	req := backend.ResourceRequest{
		Method:   r.Method,
		Resource: resource,
		ID:       pkghttp.ParseRequestOptional(r, pkghttp.PathParameter[string]("id"), nil),
		Query:    r.URL.Query(),
	}
	if r.Method != http.MethodGet && r.Method != http.MethodDelete {
		req.Body, err = pkghttp.ParseRequest(r, pkghttp.RawBody(), err)
		if err != nil {
			return err
		}
	}

	resp, err := h.resources.Call(r.Context(), req)
	if err != nil {
		return err
	}

	w.SetStatusCode(resp.StatusCode).SetRawJSONBody(resp.Body)
	return nil
}
