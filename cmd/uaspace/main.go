package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/amine-amaach/uaspace/services"
	"github.com/amine-amaach/uaspace/utils"
)

const (
	version = "v1.0.0"
	banner  = `
 _   _  ___     ___  _ __    __ _   ___  ___
| | | |/ _ \   / __|| '_ \  / _' | / __|/ _ \  %s
| |_| | (_| |  \__ \| |_) || (_| || (__|  __/
 \__,_|\__,_|  |___/| .__/  \__,_| \___|\___|
                    |_|
IoT Sensors Data Over an OPC UA Address Space
_____________________________________________O/_____
                                             O\
`
)

func main() {
	fmt.Println(utils.Colorize(fmt.Sprintf(banner, version), utils.Cyan))

	logger := utils.NewLogger()
	defer logger.Sync()

	cfg := utils.NewConfig(logger)

	sensorSim, err := services.NewSensorSimService(logger, cfg.NamespaceURI)
	if err != nil {
		logger.Fatalf("building address space: %v", err)
	}

	for _, params := range cfg.SimulatorsParams {
		logger.Info(utils.Colorize(fmt.Sprintf("%s IoT Sensor config found ⚙️", params.Name), utils.Blue))
		if _, err := sensorSim.AddSensor(params); err != nil {
			logger.Fatalf("adding sensor: %v", err)
		}
		logger.Info(utils.Colorize(fmt.Sprintf("🏷️  Publishing %s IoT sensor data ...", params.Name), utils.Green))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sensorSim.Run(ctx, cfg.SetDelayBetweenMessages, cfg.RandomizeDelayBetweenMessages)
	logger.Info("Stopping simulator...")
}
