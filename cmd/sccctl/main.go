// Command sccctl drives the control port of a running sccd.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	pb "github.com/psstoyanov/sc-controller/api/proto/v1"
	"github.com/psstoyanov/sc-controller/internal/transport"
)

const usage = `usage: sccctl [-port N] <command>

commands:
  ping                          check the daemon and report the active profile
  load-profile <file.yml>       swap the active profile
  set-sensitivity <slot> <x>    scale the action bound to a slot, e.g. ABS_X 1.5
`

func main() {
	port := flag.Int("port", 7433, "daemon control port")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	client, err := transport.Dial(*port)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch args[0] {
	case "ping":
		reply, err := client.Ping(ctx, &pb.PingRequest{})
		if err != nil {
			log.Fatalf("ping: %v", err)
		}
		fmt.Println(reply.GetStatus())

	case "load-profile":
		if len(args) != 2 {
			flag.Usage()
			os.Exit(2)
		}
		raw, err := os.ReadFile(args[1])
		if err != nil {
			log.Fatalf("read profile: %v", err)
		}
		reply, err := client.LoadProfile(ctx, &pb.LoadProfileRequest{Yaml: string(raw)})
		if err != nil {
			log.Fatalf("load-profile: %v", err)
		}
		fmt.Printf("active profile: %s\n", reply.GetName())

	case "set-sensitivity":
		if len(args) != 3 {
			flag.Usage()
			os.Exit(2)
		}
		var x float64
		if _, err := fmt.Sscanf(args[2], "%g", &x); err != nil {
			log.Fatalf("bad sensitivity %q: %v", args[2], err)
		}
		if _, err := client.SetSensitivity(ctx, &pb.SetSensitivityRequest{Slot: args[1], X: x}); err != nil {
			log.Fatalf("set-sensitivity: %v", err)
		}
		fmt.Println("ok")

	default:
		flag.Usage()
		os.Exit(2)
	}
}
