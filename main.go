package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jonboulle/clockwork"
)

var wg sync.WaitGroup

// tftclock -config={config file}

func main() {
	configFile := flag.String("config", "/etc/default/tftclock/tftclock.conf", "config file path")
	layout := flag.String("layout", "", "override the configured layout (clock, chess, counter)")
	flag.Parse()

	// read config information
	settings, err := initSettings(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if *layout != "" {
		settings.settings[sLayout] = *layout
	}

	// the terminal screen owns stdout
	lj, err := setupLogging(settings, settings.GetString(sSurface) != surfaceTerm)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer lj.Close()

	// dump them (debugging)
	log.Println(">>> Settings <<<")
	settings.Dump()
	log.Println(">>> Settings <<<")

	rt := initRuntime(settings, clockwork.NewRealClock())

	rt.screen, err = openScreen(settings)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer rt.screen.Close()

	rt.buttons = openButtons(settings)
	rt.configService = &httpConfigService{}

	// ctrl-c outside of termbox
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("signal, shutting down")
		rt.comms.shutdown()
	}()

	startDisplay(rt)
	startWatchButtons(rt)
	startConfigService(rt)

	wg.Wait()
}
