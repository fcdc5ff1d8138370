package main

import (
	"context"
	"fmt"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/bootstrap"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

func strPtr(s string) *string { return &s }

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo content",
		RunE: func(cmd *cobra.Command, args []string) error {
			inj := bootstrap.BuildContainer()
			do.MustInvoke[*gorm.DB](inj) // runs migrations

			ctx := context.Background()
			if err := seedAdmin(ctx, do.MustInvoke[repo.AdminRepo](inj)); err != nil {
				return err
			}
			// Get creates the row with defaults when none exists.
			if _, err := do.MustInvoke[repo.SettingsRepo](inj).Get(ctx); err != nil {
				return err
			}
			if err := seedListings(ctx,
				do.MustInvoke[repo.ProjectRepo](inj),
				do.MustInvoke[repo.UnitRepo](inj),
				do.MustInvoke[repo.ImageRepo](inj),
			); err != nil {
				return err
			}

			fmt.Println("seeding completed")
			return nil
		},
	}
}

func seedAdmin(ctx context.Context, admins repo.AdminRepo) error {
	const username = "mars"
	existing, err := admins.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("mars@3011#"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return admins.Create(ctx, &model.AdminUser{Username: username, PasswordHash: string(hash)})
}

type seedUnit struct {
	unit   model.Unit
	images []string
}

func seedListings(ctx context.Context, projects repo.ProjectRepo, units repo.UnitRepo, images repo.ImageRepo) error {
	demoProjects := []model.Project{
		{
			Name: "The One", Slug: "the-one", City: "الإسكندرية",
			AppearsInProjects:           true,
			AppearsInAlexandriaProjects: true,
			ShortDescription:            strPtr("مشروع سكني فاخر على ساحل البحر المتوسط"),
			Amenities:                   strPtr("حمامات سباحة\nصالة رياضية\nأمن وحراسة 24/7\nمناطق خضراء واسعة\nمول تجاري"),
		},
		{
			Name: "سان ستيفانو جراند بلازا", Slug: "san-stefano-grand-plaza", City: "الإسكندرية",
			AppearsInResaleProjects:     true,
			AppearsInAlexandriaProjects: true,
			AppearsInAlexandriaResale:   true,
			ShortDescription:            strPtr("برج سكني فاخر بإطلالة بحرية خلابة"),
			Amenities:                   strPtr("إطلالة بحرية مباشرة\nمطاعم وكافيهات\nخدمات فندقية\nموقف سيارات"),
		},
		{
			Name: "جراند هايتس أكتوبر", Slug: "grand-heights-october", City: "القاهرة",
			AppearsInProjects: true,
			ShortDescription:  strPtr("كمبوند سكني متكامل في أكتوبر"),
			Amenities:         strPtr("نادي اجتماعي\nحدائق ومناطق لعب أطفال\nمدارس قريبة\nمواصلات سهلة"),
		},
		{
			Name: "كمبوند ذا بروك القاهرة الجديدة", Slug: "the-brook-new-cairo", City: "القاهرة",
			AppearsInResaleProjects: true,
			ShortDescription:        strPtr("مجتمع سكني راقي في قلب القاهرة الجديدة"),
			Amenities:               strPtr("بحيرات صناعية\nمسارات للمشي والجري\nنادي رياضي\nمنطقة تجارية"),
		},
	}

	ids := make([]int, 0, len(demoProjects))
	created := 0
	for i := range demoProjects {
		p := demoProjects[i]
		existing, err := projects.GetBySlug(ctx, p.Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			ids = append(ids, existing.ID)
			continue
		}
		if err := projects.Create(ctx, &p); err != nil {
			return err
		}
		ids = append(ids, p.ID)
		created++
	}
	fmt.Printf("%d projects created\n", created)
	if created == 0 {
		// Re-running against a seeded database: leave units alone, the
		// unit table has no natural key to dedupe on.
		return nil
	}

	demoUnits := []seedUnit{
		{
			unit: model.Unit{
				ProjectID: ids[0], Title: "شقة 3 غرف نوم بإطلالة بحرية",
				Type: model.UnitTypePrimary, Price: 4500000, Area: 180, Bedrooms: 3, Bathrooms: 2,
				Location: "الإسكندرية - سيدي جابر", Status: model.UnitStatusAvailable,
				MainImageURL:         strPtr("https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800"),
				Description:          strPtr("شقة فاخرة بإطلالة مباشرة على البحر المتوسط، تشطيب سوبر لوكس مع تراسات واسعة."),
				IsFeaturedOnHomepage: true,
			},
			images: []string{
				"https://images.unsplash.com/photo-1560448204-e1a3fae0be0e?w=800",
				"https://images.unsplash.com/photo-1567684014761-b65e2e59b5c0?w=800",
			},
		},
		{
			unit: model.Unit{
				ProjectID: ids[0], Title: "شقة 2 غرفة نوم - طابق علوي",
				Type: model.UnitTypePrimary, Price: 3200000, Area: 120, Bedrooms: 2, Bathrooms: 2,
				Location: "الإسكندرية - سيدي جابر", Status: model.UnitStatusAvailable,
				MainImageURL:         strPtr("https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800"),
				Description:          strPtr("شقة مميزة في طابق علوي مع تشطيبات عصرية وإطلالة رائعة."),
				IsFeaturedOnHomepage: true,
			},
			images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
			},
		},
		{
			unit: model.Unit{
				ProjectID: ids[1], Title: "شقة فاخرة 4 غرف - سان ستيفانو",
				Type: model.UnitTypeResale, Price: 6500000, Area: 250, Bedrooms: 4, Bathrooms: 3,
				Location: "الإسكندرية - سان ستيفانو", Status: model.UnitStatusAvailable,
				MainImageURL:         strPtr("https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800"),
				Description:          strPtr("شقة فاخرة للبيع في برج سان ستيفانو الشهير، إطلالة بحرية خلابة على 360 درجة."),
				IsFeaturedOnHomepage: true,
			},
		},
		{
			unit: model.Unit{
				ProjectID: ids[2], Title: "فيلا مستقلة 5 غرف - جراند هايتس",
				Type: model.UnitTypePrimary, Price: 8900000, Area: 350, Bedrooms: 5, Bathrooms: 4,
				Location: "القاهرة - أكتوبر", Status: model.UnitStatusAvailable,
				MainImageURL:         strPtr("https://images.unsplash.com/photo-1580587771525-78b9dba3b914?w=800"),
				Description:          strPtr("فيلا مستقلة واسعة مع حديقة خاصة وحمام سباحة، في أرقى مناطق أكتوبر."),
				IsFeaturedOnHomepage: true,
			},
		},
		{
			unit: model.Unit{
				ProjectID: ids[2], Title: "شقة 3 غرف في كمبوند مغلق",
				Type: model.UnitTypePrimary, Price: 3800000, Area: 165, Bedrooms: 3, Bathrooms: 2,
				Location: "القاهرة - أكتوبر", Status: model.UnitStatusAvailable,
				MainImageURL: strPtr("https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800"),
				Description:  strPtr("شقة عصرية في كمبوند آمن ومغلق مع جميع الخدمات."),
			},
		},
		{
			unit: model.Unit{
				ProjectID: ids[3], Title: "شقة دوبلكس 4 غرف - ذا بروك",
				Type: model.UnitTypeResale, Price: 5200000, Area: 220, Bedrooms: 4, Bathrooms: 3,
				Location: "القاهرة - القاهرة الجديدة", Status: model.UnitStatusAvailable,
				MainImageURL:         strPtr("https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800"),
				Description:          strPtr("دوبلكس واسع في موقع مميز بالقاهرة الجديدة، تشطيب راقي جداً."),
				IsFeaturedOnHomepage: true,
			},
		},
	}

	imageCount := 0
	for i := range demoUnits {
		u := &demoUnits[i].unit
		if err := units.Create(ctx, u); err != nil {
			return err
		}
		for _, url := range demoUnits[i].images {
			if _, err := images.CreateUnitImage(ctx, u.ID, url); err != nil {
				return err
			}
			imageCount++
		}
	}
	fmt.Printf("%d units created, %d unit images created\n", len(demoUnits), imageCount)
	return nil
}
