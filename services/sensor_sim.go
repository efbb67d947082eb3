package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/amine-amaach/uaspace/server"
	"github.com/amine-amaach/uaspace/ua"
	"github.com/amine-amaach/uaspace/utils"
	"github.com/gammazero/workerpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type sensor struct {
	node    server.Node
	dataGen *DataGenService
}

// SensorSimService owns an address space with an 'IoTSensors' object under
// the Objects folder and publishes simulated sensor readings into it.
type SensorSimService struct {
	space   *server.AddressSpace
	folder  server.Node
	nsi     uint16
	logger  *zap.SugaredLogger
	sensors []sensor
}

// NewSensorSimService builds the address space and the IoTSensors object.
func NewSensorSimService(logger *zap.SugaredLogger, namespaceURI string) (*SensorSimService, error) {
	space := server.NewAddressSpace()
	nsi := space.AddNamespace(namespaceURI)
	folder, err := space.Objects().AddObjectFolder(
		ua.NodeIDString{NamespaceIndex: nsi, ID: "IoTSensors"},
		ua.QualifiedName{NamespaceIndex: nsi, Name: "IoTSensors"},
	)
	if err != nil {
		return nil, errors.Wrap(err, "adding IoTSensors object")
	}
	if err := folder.SetDescription(ua.LocalizedText{Text: "A parent object for the IoT sensors."}); err != nil {
		return nil, err
	}
	return &SensorSimService{space: space, folder: folder, nsi: nsi, logger: logger}, nil
}

// AddressSpace returns the backing address space of the simulator.
func (svc *SensorSimService) AddressSpace() *server.AddressSpace {
	return svc.space
}

// AddSensor creates a Double scalar variable node for the sensor under the
// IoTSensors object and registers a data generator for it.
func (svc *SensorSimService) AddSensor(params utils.SensorParams) (server.Node, error) {
	node, err := svc.folder.AddVariable(
		ua.NodeIDString{NamespaceIndex: svc.nsi, ID: params.Name},
		ua.QualifiedName{NamespaceIndex: svc.nsi, Name: params.Name},
	)
	if err != nil {
		return server.Node{}, errors.Wrapf(err, "adding sensor %q", params.Name)
	}
	if err := node.SetDescription(ua.LocalizedText{Text: params.Name + " IoT Sensor Simulator"}); err != nil {
		return server.Node{}, err
	}
	if err := node.SetDataType(ua.DataTypeIDDouble); err != nil {
		return server.Node{}, err
	}
	if err := node.SetValueRank(ua.ValueRankScalar); err != nil {
		return server.Node{}, err
	}
	if err := node.SetAccessLevel(ua.AccessLevelsCurrentRead); err != nil {
		return server.Node{}, err
	}
	svc.sensors = append(svc.sensors, sensor{
		node:    node,
		dataGen: NewDataGenService(params.Mean, params.StandardDeviation),
	})
	return node, nil
}

// Run publishes sensor readings until the context is cancelled. Writes are
// dispatched on a worker pool; the delay between rounds is fixed or
// randomized up to the configured delay.
func (svc *SensorSimService) Run(ctx context.Context, delaySeconds int, randomize bool) {
	if delaySeconds <= 0 {
		delaySeconds = 1
	}
	wp := workerpool.New(4)
	defer wp.StopWait()

	svc.publishRound(wp)
	delay := delaySeconds
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(delay) * time.Second):
			if randomize {
				delay = rand.Intn(delaySeconds) + 1
			}
			svc.publishRound(wp)
		}
	}
}

func (svc *SensorSimService) publishRound(wp *workerpool.WorkerPool) {
	for i := range svc.sensors {
		sen := svc.sensors[i]
		wp.Submit(func() {
			if err := server.WriteScalar(sen.node, sen.dataGen.CalculateNextValue()); err != nil {
				svc.logger.Errorf("publishing sensor value: %v", err)
			}
		})
	}
}
