package resources

import "context"

//counterfeiter:generate . SubnetDriver
type SubnetDriver interface {
	Find(ctx context.Context, nameTag string) ([]Subnet, error)
}

type Subnet struct {
	ID string
}
