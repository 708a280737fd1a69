package main

import (
	"flag"
	"log"

	"github.com/Mnajm6201/RealTimeRayTracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to run the preview server on")
	flag.Parse()

	srv := server.NewServer(*port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
