package permission

import (
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
)

func CanRead(resource Resource) pkgauth.Permission[auth.Principal] {
	return func(authentication pkgauth.Authentication[auth.Principal]) (bool, error) {
		if authentication.Principal() == nil {
			return false, nil
		}

		return AccessOf(authentication.Principal().Role, resource).Read, nil
	}
}

func CanWrite(resource Resource) pkgauth.Permission[auth.Principal] {
	return func(authentication pkgauth.Authentication[auth.Principal]) (bool, error) {
		if authentication.Principal() == nil {
			return false, nil
		}

		return AccessOf(authentication.Principal().Role, resource).Write, nil
	}
}
