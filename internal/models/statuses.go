package models

type UserRole string
type UserStatus string
type ClientType string
type PrimaryService string
type ProjectVolume string
type CadSoftware string
type RequiredOutput string
type ServiceType string
type ServiceDetail string
type ProjectStatus string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"

	UserStatusPending UserStatus = "PENDING"
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"

	ClientTypeJewelryEcommerce       ClientType = "JEWELRY_ECOMMERCE"
	ClientTypeManufacturerWholesaler ClientType = "MANUFACTURER_WHOLESALER"
	ClientTypeDesignerEtsy           ClientType = "DESIGNER_ETSY"
	ClientTypeMarketingAgency        ClientType = "MARKETING_AGENCY"

	PrimaryServiceCadModeling     PrimaryService = "CAD_MODELING"
	PrimaryServiceRendering       PrimaryService = "PHOTOREALISTIC_RENDERING"
	PrimaryServiceAnimationVideo  PrimaryService = "ANIMATION_VIDEO"
	PrimaryServiceConsulting      PrimaryService = "CONSULTING"

	ProjectVolumeOneOff           ProjectVolume = "ONE_OFF"
	ProjectVolumeOneToFiveMonthly ProjectVolume = "ONE_TO_FIVE_MONTHLY"
	ProjectVolumeFivePlus         ProjectVolume = "FIVE_PLUS_VOLUME"
	ProjectVolumeOngoingRetainer  ProjectVolume = "ONGOING_RETAINER"

	CadSoftwareRhino      CadSoftware = "RHINO"
	CadSoftwareMatrixGold CadSoftware = "MATRIX_GOLD"
	CadSoftwareZbrush     CadSoftware = "ZBRUSH"
	CadSoftwareOther      CadSoftware = "OTHER"

	RequiredOutputSTL     RequiredOutput = "STL"
	RequiredOutputCDM     RequiredOutput = "CDM"
	RequiredOutputPngJpeg RequiredOutput = "PNG_JPEG"
	RequiredOutputMP4     RequiredOutput = "MP4"

	ServiceTypeCadModeling        ServiceType = "3D CAD Modeling"
	ServiceTypeRenderingAnimation ServiceType = "3D Rendering & Animation"

	// Детализация для CAD Modeling
	ServiceDetailModelingFromScratch ServiceDetail = "Modeling from Scratch (Sketch/Reference)"
	ServiceDetailModelingFromSample  ServiceDetail = "Modeling from Sample (Photo/Physical Item)"
	ServiceDetailCadCorrection       ServiceDetail = "CAD Correction/Optimization"
	ServiceDetailDigitalSculpting    ServiceDetail = "Digital Sculpting (Organic Forms & Free-Form Designs)"

	// Детализация для Rendering & Animation
	ServiceDetailStillShots          ServiceDetail = "Still Shots (White Background, 3 Views)"
	ServiceDetailLifestylePackshot   ServiceDetail = "Lifestyle Packshot (Complex Scene, 5 Views)"
	ServiceDetailTurnaroundAnimation ServiceDetail = "360° Turntable Animation (10-15 sec)"
	ServiceDetailOnBodyVideo         ServiceDetail = "On-Body Video Animation"

	ProjectStatusQuotePending             ProjectStatus = "QUOTE_PENDING"
	ProjectStatusAwaitingPayment          ProjectStatus = "AWAITING_PAYMENT"
	ProjectStatusPreparation              ProjectStatus = "PREPARATION"
	ProjectStatusCadSceneSetup            ProjectStatus = "CAD_SCENE_SETUP"
	ProjectStatusCadModelCreation         ProjectStatus = "CAD_MODEL_CREATION"
	ProjectStatusCadModelAwaitingApproval ProjectStatus = "CAD_MODEL_AWAITING_APPROVAL"
	ProjectStatusCadFinalOptimization     ProjectStatus = "CAD_FINAL_OPTIMIZATION"
	ProjectStatusCadFinalFileReady        ProjectStatus = "CAD_FINAL_FILE_READY"
	ProjectStatusCadFilePreparation       ProjectStatus = "CAD_FILE_PREPARATION"
	ProjectStatusSceneMaterialSetup       ProjectStatus = "SCENE_MATERIAL_SETUP"
	ProjectStatusDraftRenderApproval      ProjectStatus = "DRAFT_RENDER_AWAITING_APPROVAL"
	ProjectStatusFinalHighResRendering    ProjectStatus = "FINAL_HIGH_RES_RENDERING"
	ProjectStatusFinalVisualsReady        ProjectStatus = "FINAL_VISUALS_READY"
	ProjectStatusReadyForDownload         ProjectStatus = "READY_FOR_DOWNLOAD"
	ProjectStatusCompleted                ProjectStatus = "COMPLETED"
	ProjectStatusCancelled                ProjectStatus = "CANCELLED"
)

// Наборы допустимых значений. Используются сервисами и кастомными
// правилами валидатора, чтобы сообщать клиенту о неверном значении.
var (
	AllUserRoles = []UserRole{UserRoleAdmin, UserRoleUser, UserRoleModerator}

	AllUserStatuses = []UserStatus{UserStatusPending, UserStatusActive, UserStatusBlocked}

	AllClientTypes = []ClientType{
		ClientTypeJewelryEcommerce,
		ClientTypeManufacturerWholesaler,
		ClientTypeDesignerEtsy,
		ClientTypeMarketingAgency,
	}

	AllPrimaryServices = []PrimaryService{
		PrimaryServiceCadModeling,
		PrimaryServiceRendering,
		PrimaryServiceAnimationVideo,
		PrimaryServiceConsulting,
	}

	AllProjectVolumes = []ProjectVolume{
		ProjectVolumeOneOff,
		ProjectVolumeOneToFiveMonthly,
		ProjectVolumeFivePlus,
		ProjectVolumeOngoingRetainer,
	}

	AllCadSoftware = []CadSoftware{
		CadSoftwareRhino,
		CadSoftwareMatrixGold,
		CadSoftwareZbrush,
		CadSoftwareOther,
	}

	AllRequiredOutputs = []RequiredOutput{
		RequiredOutputSTL,
		RequiredOutputCDM,
		RequiredOutputPngJpeg,
		RequiredOutputMP4,
	}

	AllServiceTypes = []ServiceType{
		ServiceTypeCadModeling,
		ServiceTypeRenderingAnimation,
	}

	AllServiceDetails = []ServiceDetail{
		ServiceDetailModelingFromScratch,
		ServiceDetailModelingFromSample,
		ServiceDetailCadCorrection,
		ServiceDetailDigitalSculpting,
		ServiceDetailStillShots,
		ServiceDetailLifestylePackshot,
		ServiceDetailTurnaroundAnimation,
		ServiceDetailOnBodyVideo,
	}

	AllProjectStatuses = []ProjectStatus{
		ProjectStatusQuotePending,
		ProjectStatusAwaitingPayment,
		ProjectStatusPreparation,
		ProjectStatusCadSceneSetup,
		ProjectStatusCadModelCreation,
		ProjectStatusCadModelAwaitingApproval,
		ProjectStatusCadFinalOptimization,
		ProjectStatusCadFinalFileReady,
		ProjectStatusCadFilePreparation,
		ProjectStatusSceneMaterialSetup,
		ProjectStatusDraftRenderApproval,
		ProjectStatusFinalHighResRendering,
		ProjectStatusFinalVisualsReady,
		ProjectStatusReadyForDownload,
		ProjectStatusCompleted,
		ProjectStatusCancelled,
	}
)

func IsValidClientType(v ClientType) bool         { return contains(AllClientTypes, v) }
func IsValidPrimaryService(v PrimaryService) bool { return contains(AllPrimaryServices, v) }
func IsValidProjectVolume(v ProjectVolume) bool   { return contains(AllProjectVolumes, v) }
func IsValidCadSoftware(v CadSoftware) bool       { return contains(AllCadSoftware, v) }
func IsValidRequiredOutput(v RequiredOutput) bool { return contains(AllRequiredOutputs, v) }
func IsValidUserStatus(v UserStatus) bool         { return contains(AllUserStatuses, v) }
func IsValidUserRole(v UserRole) bool             { return contains(AllUserRoles, v) }
func IsValidServiceType(v ServiceType) bool       { return contains(AllServiceTypes, v) }
func IsValidServiceDetail(v ServiceDetail) bool   { return contains(AllServiceDetails, v) }
func IsValidProjectStatus(v ProjectStatus) bool   { return contains(AllProjectStatuses, v) }

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
