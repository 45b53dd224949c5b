//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Resources=Resources"
package service

import (
	"context"
	"fmt"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/permission"
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
	"github.com/klwxsrx/store-dashboard/pkg/credential"
)

type (
	Resources interface {
		Call(context.Context, backend.ResourceRequest) (backend.ResourceResponse, error)
	}

	resourcesService struct {
		backend     backend.Backend
		permissions pkgauth.PermissionService[auth.Principal]
	}
)

func NewResources(
	backend backend.Backend,
	permissions pkgauth.PermissionService[auth.Principal],
) Resources {
	return resourcesService{
		backend:     backend,
		permissions: permissions,
	}
}

// Call forwards the request on behalf of the authenticated principal,
// any login token set by the caller is replaced with the principal's one.
func (s resourcesService) Call(ctx context.Context, req backend.ResourceRequest) (backend.ResourceResponse, error) {
	authentication, ok := pkgauth.GetAuthentication[auth.Principal](ctx)
	if !ok || authentication.Principal() == nil {
		return backend.ResourceResponse{}, pkgauth.ErrUnauthenticated
	}

	check := permission.CanRead(req.Resource)
	if req.Operation() == credential.OperationWrite {
		check = permission.CanWrite(req.Resource)
	}

	err := s.permissions.Check(ctx, check)
	if err != nil {
		return backend.ResourceResponse{}, fmt.Errorf("%s %s: %w", req.Operation(), req.Resource, err)
	}

	req.LoginToken = authentication.Principal().LoginToken
	return s.backend.Fetch(ctx, req)
}
