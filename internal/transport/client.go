package transport

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/psstoyanov/sc-controller/api/proto/v1"
)

// Dial connects to a locally running daemon's control port.
func Dial(port int) (pb.ControlClient, error) {
	cc, err := grpc.NewClient(fmt.Sprintf("localhost:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return pb.NewControlClient(cc), nil
}
