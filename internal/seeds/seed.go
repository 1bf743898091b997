// Package seeds loads the demo institution fixtures used by local and staging
// environments. Seeding is idempotent: it bails out as soon as any
// institution row exists.
package seeds

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dcampus/evaluation-service/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func stamp(year, month, day, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

func stampPtr(year, month, day, hour, minute int) *time.Time {
	t := stamp(year, month, day, hour, minute)
	return &t
}

func float(v float64) *float64 { return &v }

func str(v string) *string { return &v }

// Seed loads the demo data unless the database already has institutions.
func Seed(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&models.Institution{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		logger.Info("Seed skipped, database already has data", "institutions", count)
		return nil
	}

	logger.Info("Seeding demo data")

	return db.Transaction(func(tx *gorm.DB) error {
		for _, step := range []struct {
			name string
			fn   func(*gorm.DB) error
		}{
			{"institutions", seedInstitutions},
			{"catalog", seedCatalog},
			{"users", seedUsers},
			{"base plans", seedBasePlans},
			{"sections", seedSections},
			{"enrollments", seedEnrollments},
			{"submissions", seedSubmissions},
			{"grades", seedGrades},
			{"live sessions", seedLiveSessions},
		} {
			if err := step.fn(tx); err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.name, err)
			}
		}
		logger.Info("Demo data seeded")
		return nil
	})
}

func trimesterPeriods(institutionID string) []models.AcademicPeriod {
	return []models.AcademicPeriod{
		{ID: institutionID + "-p1", InstitutionID: institutionID, Name: "Trimestre 1", SortOrder: 1, StartDate: date(2026, 1, 15), EndDate: date(2026, 4, 15)},
		{ID: institutionID + "-p2", InstitutionID: institutionID, Name: "Trimestre 2", SortOrder: 2, StartDate: date(2026, 4, 20), EndDate: date(2026, 7, 20)},
		{ID: institutionID + "-p3", InstitutionID: institutionID, Name: "Trimestre 3", SortOrder: 3, StartDate: date(2026, 7, 25), EndDate: date(2026, 10, 25)},
	}
}

func seedInstitutions(tx *gorm.DB) error {
	bimesters := make([]models.AcademicPeriod, 0, 5)
	for i := 1; i <= 5; i++ {
		bimesters = append(bimesters, models.AcademicPeriod{
			ID:            fmt.Sprintf("inst4-b%d", i),
			InstitutionID: "inst4",
			Name:          fmt.Sprintf("Bimestre %d", i),
			SortOrder:     i,
		})
	}

	institutions := []models.Institution{
		{
			ID: "inst1", Name: "Universidad del Norte", Subdomain: "uninorte", IsActive: true,
			PrimaryColor: "#2E9B63", AdminID: "u1",
			PeriodType: models.PeriodTrimester, PeriodsCount: 3,
			Periods: trimesterPeriods("inst1"),
		},
		{
			ID: "inst2", Name: "Instituto Tecnológico Avanzado", Subdomain: "ita", IsActive: true,
			PrimaryColor: "#3B82F6", AdminID: "u4",
			PeriodType: models.PeriodSemester, PeriodsCount: 2,
			Periods: []models.AcademicPeriod{
				{ID: "inst2-s1", InstitutionID: "inst2", Name: "Semestre 1", SortOrder: 1, StartDate: date(2026, 1, 15), EndDate: date(2026, 6, 15)},
				{ID: "inst2-s2", InstitutionID: "inst2", Name: "Semestre 2", SortOrder: 2, StartDate: date(2026, 7, 1), EndDate: date(2026, 12, 15)},
			},
		},
		{
			ID: "inst3", Name: "Escuela de Negocios Global", Subdomain: "eng", IsActive: true,
			PrimaryColor: "#8B5CF6", AdminID: "u7",
			PeriodType: models.PeriodTrimester, PeriodsCount: 3,
			Periods: trimesterPeriods("inst3"),
		},
		{
			ID: "inst4", Name: "Academia de Arte Digital", Subdomain: "artedigital", IsActive: false,
			PrimaryColor: "#F59E0B", AdminID: "u8",
			PeriodType: models.PeriodBimester, PeriodsCount: 5,
			Periods: bimesters,
		},
	}
	return tx.Create(&institutions).Error
}

func seedCatalog(tx *gorm.DB) error {
	careers := []models.Career{
		{ID: "car1", InstitutionID: "inst1", Name: "Ingeniería en Sistemas", Code: "ISC", Description: "Formación integral en desarrollo de software y sistemas computacionales.", IsActive: true},
		{ID: "car2", InstitutionID: "inst1", Name: "Diseño Gráfico Digital", Code: "DGD", Description: "Diseño visual, multimedia y experiencia de usuario.", IsActive: true},
		{ID: "car3", InstitutionID: "inst1", Name: "Administración de Empresas", Code: "ADE", Description: "Gestión empresarial, finanzas y liderazgo.", IsActive: true},
		{ID: "car4", InstitutionID: "inst2", Name: "Ciencia de Datos", Code: "CD", Description: "Análisis de datos, machine learning e inteligencia artificial.", IsActive: true},
		{ID: "car5", InstitutionID: "inst2", Name: "Ciberseguridad", Code: "CS", Description: "Seguridad informática y protección de sistemas.", IsActive: true},
	}
	if err := tx.Create(&careers).Error; err != nil {
		return err
	}

	subjects := []models.Subject{
		{ID: "sub1", CareerID: "car1", InstitutionID: "inst1", Name: "Desarrollo Web Full Stack", Code: "ISC-401", Credits: 4, Semester: 4, IsActive: true},
		{ID: "sub2", CareerID: "car1", InstitutionID: "inst1", Name: "Bases de Datos Avanzadas", Code: "ISC-402", Credits: 3, Semester: 4, IsActive: true},
		{ID: "sub3", CareerID: "car1", InstitutionID: "inst1", Name: "Arquitectura de Software", Code: "ISC-501", Credits: 4, Semester: 5, IsActive: true},
		{ID: "sub4", CareerID: "car1", InstitutionID: "inst1", Name: "Inteligencia Artificial", Code: "ISC-502", Credits: 3, Semester: 5, IsActive: true},
		{ID: "sub5", CareerID: "car2", InstitutionID: "inst1", Name: "Diseño UX/UI Avanzado", Code: "DGD-301", Credits: 4, Semester: 3, IsActive: true},
		{ID: "sub6", CareerID: "car2", InstitutionID: "inst1", Name: "Motion Graphics", Code: "DGD-302", Credits: 3, Semester: 3, IsActive: true},
		{ID: "sub7", CareerID: "car4", InstitutionID: "inst2", Name: "Machine Learning", Code: "CD-201", Credits: 4, Semester: 2, IsActive: true},
		{ID: "sub8", CareerID: "car4", InstitutionID: "inst2", Name: "Visualización de Datos", Code: "CD-202", Credits: 3, Semester: 2, IsActive: true},
	}
	if err := tx.Create(&subjects).Error; err != nil {
		return err
	}

	none := datatypes.JSON([]byte(`[]`))
	curricula := []models.Curriculum{
		{
			ID: "cur1", CareerID: "car1", InstitutionID: "inst1", Name: "Pensum 2026", Year: 2026, IsActive: true,
			Entries: []models.CurriculumEntry{
				{ID: "ce1", CurriculumID: "cur1", SubjectID: "sub1", Semester: 4, IsRequired: true, Prerequisites: none},
				{ID: "ce2", CurriculumID: "cur1", SubjectID: "sub2", Semester: 4, IsRequired: true, Prerequisites: none},
				{ID: "ce3", CurriculumID: "cur1", SubjectID: "sub3", Semester: 5, IsRequired: true, Prerequisites: datatypes.JSON([]byte(`["sub1"]`))},
				{ID: "ce4", CurriculumID: "cur1", SubjectID: "sub4", Semester: 5, IsRequired: false, Prerequisites: datatypes.JSON([]byte(`["sub2"]`))},
			},
		},
		{
			ID: "cur2", CareerID: "car2", InstitutionID: "inst1", Name: "Pensum 2026", Year: 2026, IsActive: true,
			Entries: []models.CurriculumEntry{
				{ID: "ce5", CurriculumID: "cur2", SubjectID: "sub5", Semester: 3, IsRequired: true, Prerequisites: none},
				{ID: "ce6", CurriculumID: "cur2", SubjectID: "sub6", Semester: 3, IsRequired: true, Prerequisites: none},
			},
		},
		{
			ID: "cur3", CareerID: "car4", InstitutionID: "inst2", Name: "Pensum 2026", Year: 2026, IsActive: true,
			Entries: []models.CurriculumEntry{
				{ID: "ce7", CurriculumID: "cur3", SubjectID: "sub7", Semester: 2, IsRequired: true, Prerequisites: none},
				{ID: "ce8", CurriculumID: "cur3", SubjectID: "sub8", Semester: 2, IsRequired: true, Prerequisites: none},
			},
		},
	}
	return tx.Create(&curricula).Error
}

func seedUsers(tx *gorm.DB) error {
	users := []models.UserProfile{
		{ID: "u0", Name: "Super Admin", Email: "super@dcampus.com", Role: models.RoleSuperAdmin, IsActive: true},
		{ID: "u1", Name: "Dr. Mónica García", Email: "admin@dcampus.com", InstitutionID: "inst1", Role: models.RoleAdmin, IsActive: true},
		{ID: "u2", Name: "Prof. Carlos López", Email: "teacher@dcampus.com", InstitutionID: "inst1", Role: models.RoleTeacher, IsActive: true, Bio: "Ingeniero de software con 10 años de experiencia en desarrollo web."},
		{ID: "u3", Name: "Ana Martínez", Email: "student@dcampus.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: true},
		{ID: "u4", Name: "Lic. Roberto Díaz", Email: "admin2@dcampus.com", InstitutionID: "inst2", Role: models.RoleAdmin, IsActive: true},
		{ID: "u5", Name: "Dra. Ana Ríos", Email: "arios@dcampus.com", InstitutionID: "inst1", Role: models.RoleTeacher, IsActive: true, Bio: "Doctora en diseño de interacción y UX research."},
		{ID: "u6", Name: "Coord. Laura Vega", Email: "coord@dcampus.com", InstitutionID: "inst1", Role: models.RoleCoordinator, IsActive: true},
		{ID: "u7", Name: "Dra. Patricia Suárez", Email: "psuarez@dcampus.com", InstitutionID: "inst3", Role: models.RoleAdmin, IsActive: true},
		{ID: "u8", Name: "Prof. Ernesto Villa", Email: "evilla@dcampus.com", InstitutionID: "inst4", Role: models.RoleAdmin, IsActive: true},
		{ID: "s1", Name: "Diego Salazar", Email: "diego@correo.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: true},
		{ID: "s2", Name: "Laura Vega Peña", Email: "laurav@correo.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: true},
		{ID: "s3", Name: "Miguel Ángel Torres", Email: "miguel@correo.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: false},
		{ID: "s4", Name: "Sofía Hernández", Email: "sofia@correo.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: true},
		{ID: "s5", Name: "Carlos Ruiz", Email: "carlos@correo.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: true},
		{ID: "s6", Name: "Valentina López", Email: "vale@correo.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: true},
		{ID: "s7", Name: "Andrés Moreno", Email: "andres@correo.com", InstitutionID: "inst1", Role: models.RoleStudent, IsActive: false},
	}
	return tx.Create(&users).Error
}

func seedBasePlans(tx *gorm.DB) error {
	basePlans := []models.BaseEvaluationPlan{
		{
			ID: "bep1", SubjectID: "sub1", InstitutionID: "inst1", Name: "Plan Base - Desarrollo Web",
			TotalWeight: 100, CreatedBy: "u0",
			Items: []models.BasePlanItem{
				{ID: "bei1", BasePlanID: "bep1", Type: models.ItemTask, Title: "Tareas Prácticas", Description: "Entregas de código funcional", Weight: 25, Position: 0},
				{ID: "bei2", BasePlanID: "bep1", Type: models.ItemExam, Title: "Exámenes Parciales", Description: "Evaluación teórica-práctica", Weight: 35, Position: 1},
				{ID: "bei3", BasePlanID: "bep1", Type: models.ItemParticipation, Title: "Participación", Description: "Asistencia y participación activa", Weight: 10, Position: 2},
				{ID: "bei4", BasePlanID: "bep1", Type: models.ItemProject, Title: "Proyecto Final", Description: "Aplicación funcional completa", Weight: 30, Position: 3},
			},
		},
		{
			ID: "bep2", SubjectID: "sub5", InstitutionID: "inst1", Name: "Plan Base - UX/UI",
			TotalWeight: 100, CreatedBy: "u0",
			Items: []models.BasePlanItem{
				{ID: "bei5", BasePlanID: "bep2", Type: models.ItemTask, Title: "Wireframes y Prototipos", Description: "Entregas de diseño", Weight: 30, Position: 0},
				{ID: "bei6", BasePlanID: "bep2", Type: models.ItemExam, Title: "Evaluación Teórica", Description: "Principios de diseño", Weight: 20, Position: 1},
				{ID: "bei7", BasePlanID: "bep2", Type: models.ItemParticipation, Title: "Participación", Description: "Críticas de diseño en clase", Weight: 15, Position: 2},
				{ID: "bei8", BasePlanID: "bep2", Type: models.ItemProject, Title: "Proyecto Rediseño App", Description: "Case study completo", Weight: 35, Position: 3},
			},
		},
	}
	return tx.Create(&basePlans).Error
}

func emptyPlans(sectionID string, ids []string, periods []models.AcademicPeriod) []models.EvaluationPlan {
	plans := make([]models.EvaluationPlan, 0, len(periods))
	for i, p := range periods {
		plans = append(plans, models.EvaluationPlan{
			ID:              ids[i],
			CourseSectionID: sectionID,
			PeriodID:        p.ID,
			PeriodName:      p.Name,
		})
	}
	return plans
}

func seedSections(tx *gorm.DB) error {
	cs1Plans := []models.EvaluationPlan{
		{
			ID: "ep1", CourseSectionID: "cs1", PeriodID: "inst1-p1", PeriodName: "Trimestre 1", TotalWeight: 100,
			Items: []models.EvaluationItem{
				{ID: "ei1", PlanID: "ep1", Type: models.ItemTask, Title: "Maquetación HTML", Description: "Crear una página web estática", Weight: 20, DueDate: date(2026, 2, 15), Position: 0},
				{ID: "ei2", PlanID: "ep1", Type: models.ItemExam, Title: "Examen Parcial 1", Description: "HTML, CSS y diseño responsive", Weight: 40, DueDate: date(2026, 3, 1), Position: 1},
				{ID: "ei3", PlanID: "ep1", Type: models.ItemParticipation, Title: "Participación en clase", Description: "Asistencia y participación activa", Weight: 15, Position: 2},
				{ID: "ei4", PlanID: "ep1", Type: models.ItemProject, Title: "Proyecto Landing Page", Description: "Crear una landing page profesional", Weight: 25, DueDate: date(2026, 3, 15), Position: 3},
			},
		},
		{
			ID: "ep2", CourseSectionID: "cs1", PeriodID: "inst1-p2", PeriodName: "Trimestre 2", TotalWeight: 100,
			Items: []models.EvaluationItem{
				{ID: "ei5", PlanID: "ep2", Type: models.ItemTask, Title: "API REST con Node.js", Description: "Crear un CRUD básico", Weight: 25, DueDate: date(2026, 5, 1), Position: 0},
				{ID: "ei6", PlanID: "ep2", Type: models.ItemExam, Title: "Examen Parcial 2", Description: "JavaScript y Node.js", Weight: 35, DueDate: date(2026, 5, 15), Position: 1},
				{ID: "ei7", PlanID: "ep2", Type: models.ItemParticipation, Title: "Participación", Description: "Participación activa", Weight: 10, Position: 2},
				{ID: "ei8", PlanID: "ep2", Type: models.ItemProject, Title: "Proyecto Full Stack", Description: "Aplicación completa", Weight: 30, DueDate: date(2026, 6, 1), Position: 3},
			},
		},
		{ID: "ep3", CourseSectionID: "cs1", PeriodID: "inst1-p3", PeriodName: "Trimestre 3"},
	}

	sections := []models.CourseSection{
		{
			ID: "cs1", SubjectID: "sub1", InstitutionID: "inst1", PeriodID: "inst1-p1", PeriodName: "Trimestre 1",
			TeacherID: "u2", TeacherName: "Prof. Carlos López", AccentColor: "#2E9B63",
			WelcomeMessage: "Bienvenido al curso de Desarrollo Web Full Stack",
			Status:         models.SectionActive, Year: 2026, BaseEvaluationPlanID: str("bep1"),
			EvaluationPlans: cs1Plans,
			Modules: []models.CourseModule{
				{
					ID: "m1", CourseSectionID: "cs1", Title: "Fundamentos HTML/CSS", SortOrder: 1,
					Lessons: []models.Lesson{
						{ID: "l1", ModuleID: "m1", Title: "Introducción a HTML5", ContentText: "Contenido de la lección...", VideoProvider: models.VideoYouTube, VideoID: "dQw4w9WgXcQ", IsFree: true, SortOrder: 1},
						{ID: "l2", ModuleID: "m1", Title: "CSS Flexbox y Grid", ContentText: "Aprende layout moderno...", VideoProvider: models.VideoYouTube, VideoID: "abc123", SortOrder: 2},
					},
				},
				{
					ID: "m2", CourseSectionID: "cs1", Title: "JavaScript Moderno", SortOrder: 2,
					Lessons: []models.Lesson{
						{ID: "l3", ModuleID: "m2", Title: "ES6+ Features", ContentText: "Arrow functions, destructuring...", VideoProvider: models.VideoVimeo, VideoID: "123456", SortOrder: 1},
					},
				},
			},
		},
		{
			ID: "cs2", SubjectID: "sub5", InstitutionID: "inst1", PeriodID: "inst1-p1", PeriodName: "Trimestre 1",
			TeacherID: "u5", TeacherName: "Dra. Ana Ríos", AccentColor: "#3B82F6",
			Status: models.SectionActive, Year: 2026, BaseEvaluationPlanID: str("bep2"),
			EvaluationPlans: emptyPlans("cs2", []string{"ep4", "ep5", "ep6"}, trimesterPeriods("inst1")),
			Modules: []models.CourseModule{
				{
					ID: "m3", CourseSectionID: "cs2", Title: "Principios de UX", SortOrder: 1,
					Lessons: []models.Lesson{
						{ID: "l4", ModuleID: "m3", Title: "Investigación de usuarios", VideoProvider: models.VideoNone, IsFree: true, SortOrder: 1},
					},
				},
			},
		},
		{
			ID: "cs3", SubjectID: "sub7", InstitutionID: "inst2", PeriodID: "inst2-s1", PeriodName: "Semestre 1",
			TeacherID: "u2", TeacherName: "Dr. Luis Mendez", AccentColor: "#F59E0B",
			Status: models.SectionDraft, Year: 2026,
			EvaluationPlans: []models.EvaluationPlan{
				{ID: "ep7", CourseSectionID: "cs3", PeriodID: "inst2-s1", PeriodName: "Semestre 1"},
				{ID: "ep8", CourseSectionID: "cs3", PeriodID: "inst2-s2", PeriodName: "Semestre 2"},
			},
		},
	}
	return tx.Create(&sections).Error
}

func seedEnrollments(tx *gorm.DB) error {
	enrollments := []models.Enrollment{
		{ID: "en1", StudentID: "u3", StudentName: "Ana Martínez", StudentEmail: "student@dcampus.com", CourseSectionID: "cs1", EnrolledAt: stamp(2026, 1, 15, 0, 0), Status: models.EnrollmentActive},
		{ID: "en2", StudentID: "s1", StudentName: "Diego Salazar", StudentEmail: "diego@correo.com", CourseSectionID: "cs1", EnrolledAt: stamp(2026, 1, 16, 0, 0), Status: models.EnrollmentActive},
		{ID: "en3", StudentID: "s2", StudentName: "Laura Vega Peña", StudentEmail: "laurav@correo.com", CourseSectionID: "cs1", EnrolledAt: stamp(2026, 1, 15, 0, 0), Status: models.EnrollmentActive},
		{ID: "en4", StudentID: "s4", StudentName: "Sofía Hernández", StudentEmail: "sofia@correo.com", CourseSectionID: "cs1", EnrolledAt: stamp(2026, 1, 18, 0, 0), Status: models.EnrollmentActive},
		{ID: "en5", StudentID: "s5", StudentName: "Carlos Ruiz", StudentEmail: "carlos@correo.com", CourseSectionID: "cs1", EnrolledAt: stamp(2026, 2, 1, 0, 0), Status: models.EnrollmentActive},
		{ID: "en6", StudentID: "s6", StudentName: "Valentina López", StudentEmail: "vale@correo.com", CourseSectionID: "cs2", EnrolledAt: stamp(2026, 1, 20, 0, 0), Status: models.EnrollmentActive},
		{ID: "en7", StudentID: "s3", StudentName: "Miguel Ángel Torres", StudentEmail: "miguel@correo.com", CourseSectionID: "cs1", EnrolledAt: stamp(2026, 1, 28, 0, 0), Status: models.EnrollmentDropped},
	}
	return tx.Create(&enrollments).Error
}

func seedSubmissions(tx *gorm.DB) error {
	submissions := []models.Submission{
		{
			ID: "sm1", EvaluationItemID: "ei1", StudentID: "u3", StudentName: "Ana Martínez", CourseSectionID: "cs1",
			LinkURL: "https://drive.google.com/file/d/ana-tarea1", LinkProvider: models.LinkDrive, Comment: "Aquí está mi entrega",
			SubmittedAt: stamp(2026, 2, 14, 10, 30), Status: models.SubmissionGraded,
			Grade: float(92), GradedAt: stampPtr(2026, 2, 16, 14, 0), Feedback: str("Excelente trabajo"),
		},
		{
			ID: "sm2", EvaluationItemID: "ei1", StudentID: "s1", StudentName: "Diego Salazar", CourseSectionID: "cs1",
			LinkURL: "https://mega.nz/file/diego-tarea1", LinkProvider: models.LinkMega, Comment: "Mi proyecto",
			SubmittedAt: stamp(2026, 2, 15, 8, 0), Status: models.SubmissionGraded,
			Grade: float(78), GradedAt: stampPtr(2026, 2, 16, 15, 0), Feedback: str("Bien, pero faltó responsive"),
		},
		{
			ID: "sm3", EvaluationItemID: "ei1", StudentID: "s2", StudentName: "Laura Vega Peña", CourseSectionID: "cs1",
			LinkURL: "https://drive.google.com/file/d/laura-tarea1", LinkProvider: models.LinkDrive,
			SubmittedAt: stamp(2026, 2, 15, 23, 50), Status: models.SubmissionPending,
		},
		{
			ID: "sm4", EvaluationItemID: "ei4", StudentID: "u3", StudentName: "Ana Martínez", CourseSectionID: "cs1",
			LinkURL: "https://github.com/ana/landing-page", LinkProvider: models.LinkExternal, Comment: "Proyecto desplegado en Vercel",
			SubmittedAt: stamp(2026, 3, 14, 16, 0), Status: models.SubmissionGraded,
			Grade: float(95), GradedAt: stampPtr(2026, 3, 16, 10, 0), Feedback: str("Excelente UI/UX"),
		},
	}
	return tx.Create(&submissions).Error
}

func seedGrades(tx *gorm.DB) error {
	grades := []models.Grade{
		{ID: "g1", StudentID: "u3", StudentName: "Ana Martínez", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei1", EvaluationItemTitle: "Maquetación HTML", Score: 92, MaxScore: 100, Weight: 20},
		{ID: "g2", StudentID: "u3", StudentName: "Ana Martínez", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei2", EvaluationItemTitle: "Examen Parcial 1", Score: 88, MaxScore: 100, Weight: 40},
		{ID: "g3", StudentID: "u3", StudentName: "Ana Martínez", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei3", EvaluationItemTitle: "Participación en clase", Score: 95, MaxScore: 100, Weight: 15},
		{ID: "g4", StudentID: "u3", StudentName: "Ana Martínez", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei4", EvaluationItemTitle: "Proyecto Landing Page", Score: 95, MaxScore: 100, Weight: 25},
		{ID: "g5", StudentID: "s1", StudentName: "Diego Salazar", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei1", EvaluationItemTitle: "Maquetación HTML", Score: 78, MaxScore: 100, Weight: 20},
		{ID: "g6", StudentID: "s1", StudentName: "Diego Salazar", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei2", EvaluationItemTitle: "Examen Parcial 1", Score: 65, MaxScore: 100, Weight: 40},
		{ID: "g7", StudentID: "s2", StudentName: "Laura Vega Peña", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei1", EvaluationItemTitle: "Maquetación HTML", Score: 85, MaxScore: 100, Weight: 20},
		{ID: "g8", StudentID: "s4", StudentName: "Sofía Hernández", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei1", EvaluationItemTitle: "Maquetación HTML", Score: 90, MaxScore: 100, Weight: 20},
		{ID: "g9", StudentID: "s4", StudentName: "Sofía Hernández", CourseSectionID: "cs1", PeriodID: "inst1-p1", EvaluationItemID: "ei2", EvaluationItemTitle: "Examen Parcial 1", Score: 92, MaxScore: 100, Weight: 40},
	}
	return tx.Create(&grades).Error
}

func seedLiveSessions(tx *gorm.DB) error {
	sessions := []models.LiveSession{
		{ID: "ls1", CourseSectionID: "cs1", Title: "Introducción a React Hooks", Platform: models.PlatformZoom, MeetingURL: "https://zoom.us/j/123456", ScheduledAt: stamp(2026, 2, 28, 10, 0), DurationMinutes: 90, Status: models.SessionLive, TeacherID: "u2", TeacherName: "Prof. Carlos López"},
		{ID: "ls2", CourseSectionID: "cs2", Title: "Principios de Diseño Visual", Platform: models.PlatformMeet, MeetingURL: "https://meet.google.com/abc-def", ScheduledAt: stamp(2026, 2, 28, 14, 0), DurationMinutes: 90, Status: models.SessionScheduled, TeacherID: "u5", TeacherName: "Dra. Ana Ríos"},
		{ID: "ls3", CourseSectionID: "cs1", Title: "Node.js y Express", Platform: models.PlatformZoom, MeetingURL: "https://zoom.us/j/789012", ScheduledAt: stamp(2026, 3, 1, 9, 0), DurationMinutes: 90, Status: models.SessionScheduled, TeacherID: "u2", TeacherName: "Prof. Carlos López"},
		{ID: "ls4", CourseSectionID: "cs1", Title: "Bases de Datos NoSQL", Platform: models.PlatformJitsi, MeetingURL: "https://meet.jit.si/dcampus-nosql", ScheduledAt: stamp(2026, 3, 2, 11, 0), DurationMinutes: 60, Status: models.SessionScheduled, TeacherID: "u2", TeacherName: "Prof. Carlos López"},
	}
	if err := tx.Create(&sessions).Error; err != nil {
		return err
	}

	attendance := []models.Attendance{
		{ID: "a1", LiveSessionID: "ls1", StudentID: "u3", StudentName: "Ana Martínez", ConfirmedAt: stampPtr(2026, 2, 27, 20, 0), JoinedAt: stampPtr(2026, 2, 28, 9, 58), Status: models.AttendanceAttended},
		{ID: "a2", LiveSessionID: "ls1", StudentID: "s1", StudentName: "Diego Salazar", ConfirmedAt: stampPtr(2026, 2, 28, 8, 0), Status: models.AttendanceConfirmed},
		{ID: "a3", LiveSessionID: "ls1", StudentID: "s2", StudentName: "Laura Vega Peña", Status: models.AttendancePending},
		{ID: "a4", LiveSessionID: "ls1", StudentID: "s4", StudentName: "Sofía Hernández", ConfirmedAt: stampPtr(2026, 2, 27, 18, 0), JoinedAt: stampPtr(2026, 2, 28, 10, 2), Status: models.AttendanceAttended},
		{ID: "a5", LiveSessionID: "ls1", StudentID: "s5", StudentName: "Carlos Ruiz", Status: models.AttendanceAbsent},
	}
	return tx.Create(&attendance).Error
}
