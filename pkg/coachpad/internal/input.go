package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/constants"
)

// InputEvent is one abstract button transition.
type InputEvent struct {
	Button  constants.Button
	Pressed bool
}

// InputProcessor translates raw SDL events into abstract button events and
// keeps attached game controllers open.
type InputProcessor struct {
	controllers map[int32]*sdl.GameController
}

var inputProcessor *InputProcessor

// InitInputProcessor prepares input handling and opens any controllers that
// are already attached.
func InitInputProcessor() {
	inputProcessor = &InputProcessor{
		controllers: make(map[int32]*sdl.GameController),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			inputProcessor.openController(int32(i))
		}
	}
}

// GetInputProcessor returns the process-wide input processor.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

var keyboardMap = map[sdl.Keycode]constants.Button{
	sdl.K_UP:        constants.ButtonUp,
	sdl.K_DOWN:      constants.ButtonDown,
	sdl.K_LEFT:      constants.ButtonLeft,
	sdl.K_RIGHT:     constants.ButtonRight,
	sdl.K_RETURN:    constants.ButtonConfirm,
	sdl.K_KP_ENTER:  constants.ButtonConfirm,
	sdl.K_ESCAPE:    constants.ButtonBack,
	sdl.K_TAB:       constants.ButtonDrawer,
	sdl.K_SPACE:     constants.ButtonAction,
	sdl.K_F1:        constants.ButtonStart,
	sdl.K_BACKSLASH: constants.ButtonMenu,
}

var controllerMap = map[sdl.GameControllerButton]constants.Button{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.ButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.ButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.ButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.ButtonRight,
	sdl.CONTROLLER_BUTTON_A:          constants.ButtonConfirm,
	sdl.CONTROLLER_BUTTON_B:          constants.ButtonBack,
	sdl.CONTROLLER_BUTTON_X:          constants.ButtonDrawer,
	sdl.CONTROLLER_BUTTON_Y:          constants.ButtonAction,
	sdl.CONTROLLER_BUTTON_START:      constants.ButtonStart,
	sdl.CONTROLLER_BUTTON_GUIDE:      constants.ButtonMenu,
}

// ProcessSDLEvent maps one SDL event to an abstract button event, or nil when
// the event carries no button meaning. Controller attach/detach is handled
// here as a side effect.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := keyboardMap[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMap[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int32(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(int32(e.Which))
		}
	}

	return nil
}

func (p *InputProcessor) openController(index int32) {
	ctrl := sdl.GameControllerOpen(int(index))
	if ctrl == nil {
		GetLogger().Warn("failed to open controller", "index", index)
		return
	}
	joystickID := ctrl.Joystick().InstanceID()
	p.controllers[int32(joystickID)] = ctrl
	GetLogger().Debug("controller attached", "id", joystickID, "name", ctrl.Name())
}

func (p *InputProcessor) closeController(joystickID int32) {
	if ctrl, ok := p.controllers[joystickID]; ok {
		ctrl.Close()
		delete(p.controllers, joystickID)
		GetLogger().Debug("controller detached", "id", joystickID)
	}
}

// CloseAllControllers closes every open controller handle.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, ctrl := range inputProcessor.controllers {
		ctrl.Close()
		delete(inputProcessor.controllers, id)
	}
}
