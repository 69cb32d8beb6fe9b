// housectl drives the typed client through a full lifecycle against a
// running server: house, rooms, devices, report.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"smarthome-api/api"
	"smarthome-api/client"
)

func main() {
	_ = godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	ctx := context.Background()
	c := client.New(apiURL)

	house, err := c.GetHouse(ctx)
	if err != nil {
		log.Fatalf("get house: %v", err)
	}
	fmt.Printf("House: %+v\n", *house)

	kitchen, err := c.AddRoom(ctx, api.NewRoom{Name: "Kitchen"})
	if err != nil {
		log.Fatalf("add room: %v", err)
	}
	fmt.Printf("Created room: %+v\n", *kitchen)

	fridge, err := c.AddDevice(ctx, kitchen.ID, api.NewDevice{Name: "Fridge"})
	if err != nil {
		log.Fatalf("add device: %v", err)
	}
	fmt.Printf("Created device: %+v\n", *fridge)

	fridge, err = c.UpdateDevice(ctx, kitchen.ID, fridge.ID, api.NewDevice{Name: "Fridge v2"})
	if err != nil {
		log.Fatalf("update device: %v", err)
	}
	fmt.Printf("Updated device: %+v\n", *fridge)

	devices, err := c.ListDevices(ctx, kitchen.ID)
	if err != nil {
		log.Fatalf("list devices: %v", err)
	}
	fmt.Printf("Devices in %s: %+v\n", kitchen.Name, devices)

	report, err := c.GetReport(ctx)
	if err != nil {
		log.Fatalf("get report: %v", err)
	}
	fmt.Printf("Report: %+v\n", *report)

	if err := c.DeleteRoom(ctx, kitchen.ID); err != nil {
		log.Fatalf("delete room: %v", err)
	}
	fmt.Println("Deleted room", kitchen.ID)

	rooms, err := c.ListRooms(ctx)
	if err != nil {
		log.Fatalf("list rooms: %v", err)
	}
	fmt.Printf("Rooms: %+v\n", rooms)
}
