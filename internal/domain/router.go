package domain

// View identifies a top-level screen of the hub.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewWorkout   View = "workout"
	ViewNutrition View = "nutrition"
	ViewProfile   View = "profile"
	ViewDevices   View = "devices"
	ViewReport    View = "report"
)

// WorkoutSubView is the nested state inside the workout view.
type WorkoutSubView string

const (
	WorkoutPlanSelect    WorkoutSubView = "plan_select"
	WorkoutActiveSession WorkoutSubView = "active_session"
)

// NutritionSubView is the nested state inside the nutrition view.
type NutritionSubView string

const (
	NutritionOverview     NutritionSubView = "overview"
	NutritionRecipeDetail NutritionSubView = "recipe_detail"
)

// DeviceSubView is the nested state inside the device-integration view.
type DeviceSubView string

const (
	DeviceOverview DeviceSubView = "overview"
	DeviceList     DeviceSubView = "device_list"
	DeviceLiveData DeviceSubView = "live_data"
)

// ProfileSubView is the nested state inside the profile view.
type ProfileSubView string

const (
	ProfileOverview ProfileSubView = "overview"
	ProfileEdit     ProfileSubView = "edit"
	ProfileGoals    ProfileSubView = "goals"
)

// Router is the top-level navigation state machine. Transitions are
// direct jumps, never a stack: back from any view returns to the
// dashboard. Each view's nested sub-state resets to its default
// whenever the view is entered from the dashboard.
type Router struct {
	view      View
	workout   WorkoutSubView
	nutrition NutritionSubView
	device    DeviceSubView
	profile   ProfileSubView
}

// NewRouter starts routing at the dashboard. The router must not be
// constructed until the intake wizard has completed.
func NewRouter() *Router {
	return &Router{
		view:      ViewDashboard,
		workout:   WorkoutPlanSelect,
		nutrition: NutritionOverview,
		device:    DeviceOverview,
		profile:   ProfileOverview,
	}
}

// View returns the active top-level view.
func (r *Router) View() View {
	return r.view
}

// Goto jumps directly to a view, resetting that view's nested state.
func (r *Router) Goto(v View) {
	switch v {
	case ViewWorkout:
		r.workout = WorkoutPlanSelect
	case ViewNutrition:
		r.nutrition = NutritionOverview
	case ViewDevices:
		r.device = DeviceOverview
	case ViewProfile:
		r.profile = ProfileOverview
	}
	r.view = v
}

// Back returns to the dashboard from any view.
func (r *Router) Back() {
	r.view = ViewDashboard
}

// WorkoutSub returns the workout view's nested state.
func (r *Router) WorkoutSub() WorkoutSubView { return r.workout }

// SetWorkoutSub updates the workout view's nested state.
func (r *Router) SetWorkoutSub(s WorkoutSubView) { r.workout = s }

// NutritionSub returns the nutrition view's nested state.
func (r *Router) NutritionSub() NutritionSubView { return r.nutrition }

// SetNutritionSub updates the nutrition view's nested state.
func (r *Router) SetNutritionSub(s NutritionSubView) { r.nutrition = s }

// DeviceSub returns the device view's nested state.
func (r *Router) DeviceSub() DeviceSubView { return r.device }

// SetDeviceSub updates the device view's nested state.
func (r *Router) SetDeviceSub(s DeviceSubView) { r.device = s }

// ProfileSub returns the profile view's nested state.
func (r *Router) ProfileSub() ProfileSubView { return r.profile }

// SetProfileSub updates the profile view's nested state.
func (r *Router) SetProfileSub(s ProfileSubView) { r.profile = s }

// GetViewTitle returns the heading shown for a view.
func GetViewTitle(v View) string {
	switch v {
	case ViewDashboard:
		return "Vital"
	case ViewWorkout:
		return "Workout Plans"
	case ViewNutrition:
		return "Nutrition"
	case ViewProfile:
		return "Profile"
	case ViewDevices:
		return "Device Integration"
	case ViewReport:
		return "Workout Report"
	default:
		return "Unknown"
	}
}
