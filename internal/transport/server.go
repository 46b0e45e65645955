package transport

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/psstoyanov/sc-controller/api/proto/v1"
)

// Daemon is the engine surface the control service drives.
type Daemon interface {
	ActiveProfile() string
	ApplyProfile(yaml []byte) (string, error)
	SetSensitivity(slot string, x, y, z float64) bool
}

type Server struct {
	grpc *grpc.Server
	lis  net.Listener
}

func StartServer(port int, d Daemon) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		grpc: grpc.NewServer(),
		lis:  lis,
	}
	pb.RegisterControlServer(s.grpc, &controlService{daemon: d})
	return s, nil
}

func (s *Server) Serve() error {
	return s.grpc.Serve(s.lis)
}
func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

// ----- control service ----------------------------------------------------

type controlService struct {
	pb.UnimplementedControlServer
	daemon Daemon
}

func (c *controlService) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingReply, error) {
	return &pb.PingReply{Status: "ok: " + c.daemon.ActiveProfile()}, nil
}

func (c *controlService) LoadProfile(ctx context.Context, req *pb.LoadProfileRequest) (*pb.LoadProfileReply, error) {
	name, err := c.daemon.ApplyProfile([]byte(req.GetYaml()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "load profile: %v", err)
	}
	return &pb.LoadProfileReply{Name: name}, nil
}

func (c *controlService) SetSensitivity(ctx context.Context, req *pb.SetSensitivityRequest) (*pb.SetSensitivityReply, error) {
	ok := c.daemon.SetSensitivity(req.GetSlot(), req.GetX(), req.GetY(), req.GetZ())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "slot %q has no scalable binding", req.GetSlot())
	}
	return &pb.SetSensitivityReply{Ok: true}, nil
}
